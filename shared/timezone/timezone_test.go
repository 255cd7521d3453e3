package timezone_test

import (
	"eventzone/shared/clock"
	"eventzone/shared/timezone"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallClockPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestIsValidTimezone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "utc", input: "UTC", expected: true},
		{name: "new york", input: "America/New_York", expected: true},
		{name: "three level name", input: "America/Argentina/Buenos_Aires", expected: true},
		{name: "etc fixed offset", input: "Etc/GMT+5", expected: true},
		{name: "empty string", input: "", expected: false},
		{name: "unknown zone", input: "Not/AZone", expected: false},
		{name: "mars", input: "Mars/Cydonia", expected: false},
		{name: "wrong case", input: "america/new_york", expected: false},
		{name: "machine local", input: "Local", expected: false},
		{name: "path traversal", input: "../etc/passwd", expected: false},
		{name: "garbage", input: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, timezone.IsValidTimezone(tt.input))
			})
		})
	}
}

func TestIsValidTimezone_CommonTimezones(t *testing.T) {
	for _, opt := range timezone.CommonTimezones() {
		assert.True(t, timezone.IsValidTimezone(opt.ID), opt.ID)
	}
}

func TestFormatInstant(t *testing.T) {
	tests := []struct {
		name     string
		instant  string
		tz       string
		expected string
	}{
		{
			name:     "round trip at utc",
			instant:  "2024-01-15T12:30:45.000Z",
			tz:       "UTC",
			expected: "2024-01-15 12:30:45",
		},
		{
			name:     "new york standard time",
			instant:  "2024-01-15T12:30:45.000Z",
			tz:       "America/New_York",
			expected: "2024-01-15 07:30:45",
		},
		{
			name:     "new york daylight time",
			instant:  "2024-07-15T12:30:45.000Z",
			tz:       "America/New_York",
			expected: "2024-07-15 08:30:45",
		},
		{
			name:     "crosses date line forward",
			instant:  "2024-01-15T20:00:00Z",
			tz:       "Asia/Tokyo",
			expected: "2024-01-16 05:00:00",
		},
		{
			name:     "crosses date line backward",
			instant:  "2024-01-01T02:00:00Z",
			tz:       "America/Los_Angeles",
			expected: "2023-12-31 18:00:00",
		},
		{
			name:     "half hour offset",
			instant:  "2024-03-01T00:00:00Z",
			tz:       "Asia/Kolkata",
			expected: "2024-03-01 05:30:00",
		},
		{
			name:     "input with explicit offset",
			instant:  "2024-01-15T07:30:45-05:00",
			tz:       "UTC",
			expected: "2024-01-15 12:30:45",
		},
		{
			name:     "no offset is read as utc",
			instant:  "2024-01-15T12:30:45",
			tz:       "Europe/Paris",
			expected: "2024-01-15 13:30:45",
		},
		{
			name:     "minute precision",
			instant:  "2024-01-15T12:30",
			tz:       "UTC",
			expected: "2024-01-15 12:30:00",
		},
		{
			name:     "space separated",
			instant:  "2024-01-15 12:30:45",
			tz:       "UTC",
			expected: "2024-01-15 12:30:45",
		},
		{
			name:     "date only is utc midnight",
			instant:  "2024-01-15",
			tz:       "UTC",
			expected: "2024-01-15 00:00:00",
		},
		{
			name:     "fraction is truncated",
			instant:  "2024-01-15T12:30:45.999999Z",
			tz:       "UTC",
			expected: "2024-01-15 12:30:45",
		},
		{
			name:     "single digit fields are padded",
			instant:  "2024-02-03T04:05:06Z",
			tz:       "UTC",
			expected: "2024-02-03 04:05:06",
		},
		{
			name:     "midnight is 00 not 24",
			instant:  "2024-06-01T04:00:00Z",
			tz:       "America/New_York",
			expected: "2024-06-01 00:00:00",
		},
		{
			name:     "early year keeps four digits",
			instant:  "0999-06-01T12:00:00Z",
			tz:       "UTC",
			expected: "0999-06-01 12:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timezone.FormatInstant(tt.instant, tt.tz)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Regexp(t, wallClockPattern, result)
		})
	}
}

func TestFormatInstant_DSTTransitions(t *testing.T) {
	// 2024-03-10 07:00 UTC is 03:00 EDT, one second earlier is 01:59:59 EST
	before, err := timezone.FormatInstant("2024-03-10T06:59:59Z", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10 01:59:59", before)

	after, err := timezone.FormatInstant("2024-03-10T07:00:00Z", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10 03:00:00", after)

	// fall back: 01:30 occurs twice
	first, err := timezone.FormatInstant("2024-11-03T05:30:00Z", "America/New_York")
	require.NoError(t, err)

	second, err := timezone.FormatInstant("2024-11-03T06:30:00Z", "America/New_York")
	require.NoError(t, err)

	assert.Equal(t, "2024-11-03 01:30:00", first)
	assert.Equal(t, first, second)
}

func TestFormatInstant_Errors(t *testing.T) {
	tests := []struct {
		name    string
		instant string
		tz      string
		wantErr error
	}{
		{name: "unknown timezone", instant: "2024-01-15T12:30:45.000Z", tz: "Mars/Cydonia", wantErr: timezone.ErrUnknownTimezone},
		{name: "empty timezone", instant: "2024-01-15T12:30:45.000Z", tz: "", wantErr: timezone.ErrUnknownTimezone},
		{name: "garbage instant", instant: "not a date", tz: "UTC", wantErr: timezone.ErrInvalidInstant},
		{name: "empty instant", instant: "", tz: "UTC", wantErr: timezone.ErrInvalidInstant},
		{name: "impossible month", instant: "2024-13-01T00:00:00Z", tz: "UTC", wantErr: timezone.ErrInvalidInstant},
		{name: "impossible day", instant: "2024-02-30T00:00:00Z", tz: "UTC", wantErr: timezone.ErrInvalidInstant},
		{name: "year overflows after conversion", instant: "9999-12-31T23:00:00Z", tz: "Asia/Tokyo", wantErr: timezone.ErrInvalidInstant},
		{name: "timezone checked first", instant: "garbage", tz: "Mars/Cydonia", wantErr: timezone.ErrUnknownTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timezone.FormatInstant(tt.instant, tt.tz)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, result)
		})
	}
}

func TestFormatInstant_Deterministic(t *testing.T) {
	first, err := timezone.FormatInstant("2024-07-15T12:30:45.000Z", "Australia/Sydney")
	require.NoError(t, err)

	for range 100 {
		again, err := timezone.FormatInstant("2024-07-15T12:30:45.000Z", "Australia/Sydney")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFormatInstant_IgnoresMachineTimezone(t *testing.T) {
	original := time.Local
	defer func() { time.Local = original }()

	time.Local = time.FixedZone("Somewhere", 11*60*60)

	result, err := timezone.FormatInstant("2024-01-15T12:30:45", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 12:30:45", result)
}

func TestFormatInstant_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func(hour int) {
			defer wg.Done()

			instant := time.Date(2024, 1, 15, hour%24, 0, 0, 0, time.UTC).Format(time.RFC3339)

			result, err := timezone.FormatInstant(instant, "UTC")
			assert.NoError(t, err)
			assert.Equal(t, time.Date(2024, 1, 15, hour%24, 0, 0, 0, time.UTC).Format(timezone.Layout), result)
		}(i)
	}

	wg.Wait()
}

func TestFormatTime(t *testing.T) {
	instant := time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)

	result, err := timezone.FormatTime(instant, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 07:30:45", result)

	_, err = timezone.FormatTime(instant, "Not/AZone")
	assert.ErrorIs(t, err, timezone.ErrUnknownTimezone)
}

func TestParseInstant(t *testing.T) {
	parsed, err := timezone.ParseInstant("2024-01-15T07:30:45-05:00")
	require.NoError(t, err)

	assert.True(t, parsed.Equal(time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)))
	assert.Equal(t, time.UTC, parsed.Location())

	_, err = timezone.ParseInstant("15/01/2024")
	assert.ErrorIs(t, err, timezone.ErrInvalidInstant)
}

func TestNormalizer_CurrentTimestampIn(t *testing.T) {
	frozen := time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)
	normalizer := timezone.New(clock.NewFixed(frozen))

	tests := []struct {
		name     string
		tz       string
		expected string
	}{
		{name: "utc", tz: "UTC", expected: "2024-01-15 12:30:45"},
		{name: "defaults to utc", tz: "", expected: "2024-01-15 12:30:45"},
		{name: "new york", tz: "America/New_York", expected: "2024-01-15 07:30:45"},
		{name: "tokyo", tz: "Asia/Tokyo", expected: "2024-01-15 21:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalizer.CurrentTimestampIn(tt.tz)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := normalizer.CurrentTimestampIn("Mars/Cydonia")
	assert.ErrorIs(t, err, timezone.ErrUnknownTimezone)
}

func TestCurrentTimestampIn_SystemClock(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)

	result, err := timezone.CurrentTimestampIn("UTC")
	require.NoError(t, err)
	assert.Regexp(t, wallClockPattern, result)

	parsed, err := time.Parse(timezone.Layout, result)
	require.NoError(t, err)

	after := time.Now().UTC()
	assert.False(t, parsed.Before(before))
	assert.False(t, parsed.After(after))
}

func TestNormalizer_FormatInstantOrOriginal(t *testing.T) {
	normalizer := timezone.New(clock.NewSystem())

	assert.Equal(t, "2024-01-15 07:30:45", normalizer.FormatInstantOrOriginal("2024-01-15T12:30:45.000Z", "America/New_York"))
	assert.Equal(t, "yesterday", normalizer.FormatInstantOrOriginal("yesterday", "UTC"))
	assert.Equal(t, "2024-01-15T12:30:45.000Z", normalizer.FormatInstantOrOriginal("2024-01-15T12:30:45.000Z", "Mars/Cydonia"))
}

func TestCommonTimezones_ReturnsCopy(t *testing.T) {
	list := timezone.CommonTimezones()
	require.NotEmpty(t, list)

	list[0].ID = "changed"

	assert.Equal(t, "UTC", timezone.CommonTimezones()[0].ID)
}
