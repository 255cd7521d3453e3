package timezone

// Option is a timezone offered by pickers.
type Option struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

var commonTimezones = []Option{
	{ID: "UTC", Description: "Coordinated Universal Time"},
	{ID: "America/New_York", Description: "US Eastern (New York)"},
	{ID: "America/Chicago", Description: "US Central (Chicago)"},
	{ID: "America/Denver", Description: "US Mountain (Denver)"},
	{ID: "America/Los_Angeles", Description: "US Pacific (Los Angeles)"},
	{ID: "Europe/London", Description: "UK (London)"},
	{ID: "Europe/Paris", Description: "Central Europe (Paris)"},
	{ID: "Asia/Tokyo", Description: "Japan (Tokyo)"},
	{ID: "Asia/Shanghai", Description: "China (Shanghai)"},
	{ID: "Asia/Dubai", Description: "Gulf (Dubai)"},
	{ID: "Australia/Sydney", Description: "Australian Eastern (Sydney)"},
	{ID: "America/Sao_Paulo", Description: "Brazil (Sao Paulo)"},
}

// CommonTimezones returns a copy of the curated picker list.
func CommonTimezones() []Option {
	out := make([]Option, len(commonTimezones))
	copy(out, commonTimezones)

	return out
}
