package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // fallback tz database when the host has no zoneinfo

	"eventzone/shared/clock"
)

const (
	// Layout is the wall-clock format produced by every Format* function.
	Layout = "2006-01-02 15:04:05"
	// Default is used when a caller supplies no timezone.
	Default = "UTC"

	maxYear = 9999
)

var (
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrInvalidInstant  = errors.New("invalid instant")
)

// instantLayouts are tried in order. Layouts without an offset parse as UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadLocation resolves an IANA identifier. The empty string and "Local" are rejected: the former
// would silently mean UTC and the latter depends on the machine configuration.
func LoadLocation(id string) (*time.Location, error) {
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, id)
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, id)
	}

	return loc, nil
}

// IsValidTimezone reports whether id resolves against the timezone database.
func IsValidTimezone(id string) bool {
	_, err := LoadLocation(id)

	return err == nil
}

// ParseInstant parses an ISO-8601 date-time into an absolute point in time.
func ParseInstant(instant string) (time.Time, error) {
	value := strings.TrimSpace(instant)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}

	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, instant)
}

// FormatTime renders t as observed in timezone id.
func FormatTime(t time.Time, id string) (string, error) {
	loc, err := LoadLocation(id)
	if err != nil {
		return "", err
	}

	return formatIn(t, loc)
}

// FormatInstant parses instant and renders it as observed in timezone id.
func FormatInstant(instant, id string) (string, error) {
	loc, err := LoadLocation(id)
	if err != nil {
		return "", err
	}

	t, err := ParseInstant(instant)
	if err != nil {
		return "", err
	}

	return formatIn(t, loc)
}

func formatIn(t time.Time, loc *time.Location) (string, error) {
	local := t.In(loc)

	// four-digit year is part of the output contract
	if local.Year() < 0 || local.Year() > maxYear {
		return "", fmt.Errorf("%w: year %d out of range", ErrInvalidInstant, local.Year())
	}

	return local.Format(Layout), nil
}

// Normalizer binds the formatting functions to a clock for the current timestamp snapshot.
type Normalizer struct {
	clock clock.Clock
}

func New(c clock.Clock) *Normalizer {
	return &Normalizer{clock: c}
}

var defaultNormalizer = New(clock.NewSystem())

// Now returns the clock reading in UTC.
func (n *Normalizer) Now() time.Time {
	return n.clock.Now().UTC()
}

func (n *Normalizer) FormatTime(t time.Time, id string) (string, error) {
	return FormatTime(t, id)
}

func (n *Normalizer) FormatInstant(instant, id string) (string, error) {
	return FormatInstant(instant, id)
}

// FormatInstantOrOriginal is the display fallback policy: when the instant or the timezone cannot be
// handled, the original input is returned unchanged. Use it only where a rendered value is purely
// presentational; everything else should handle the error from FormatInstant.
func (n *Normalizer) FormatInstantOrOriginal(instant, id string) string {
	formatted, err := FormatInstant(instant, id)
	if err != nil {
		return instant
	}

	return formatted
}

// CurrentTimestampIn formats the current clock reading in timezone id, defaulting to UTC.
func (n *Normalizer) CurrentTimestampIn(id string) (string, error) {
	if id == "" {
		id = Default
	}

	return FormatTime(n.Now(), id)
}

// CurrentTimestampIn formats the system time in timezone id, defaulting to UTC.
func CurrentTimestampIn(id string) (string, error) {
	return defaultNormalizer.CurrentTimestampIn(id)
}
