// Package timezone converts absolute instants into wall-clock strings observed in IANA timezones.
//
// Usage Examples:
//
//  1. Validating a timezone identifier (never panics):
//     ok := timezone.IsValidTimezone("America/New_York")
//
//  2. Rendering an ISO-8601 instant in a timezone:
//     s, err := timezone.FormatInstant("2024-01-15T12:30:45.000Z", "America/New_York") // "2024-01-15 07:30:45"
//
//  3. Rendering a time.Time already held by the caller:
//     s, err := timezone.FormatTime(event.StartAt, profile.Timezone)
//
//  4. Current timestamp in a timezone with an injected clock:
//     n := timezone.New(clock.NewSystem())
//     s, err := n.CurrentTimestampIn("Asia/Tokyo")
//
// Output format is always "YYYY-MM-DD HH:MM:SS" (Go layout "2006-01-02 15:04:05"), 24-hour clock,
// zero padded, without offset or abbreviation suffix.
//
// Instants without an explicit offset are read as UTC, never in the machine's local zone.
// Identifiers are resolved by the host timezone database with the embedded time/tzdata as fallback.
// The package holds no mutable state and is safe for concurrent use.
package timezone
