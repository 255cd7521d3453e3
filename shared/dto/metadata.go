package dto

import (
	"eventzone/shared/model"
	"eventzone/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

// FromModel renders the audit stamps as wall-clock strings observed in timezone tz.
func (m *Metadata) FromModel(model model.Metadata, tz string) {
	m.CreatedAt = RenderTime(model.CreatedAt, tz)
	m.ModifiedAt = RenderTime(model.ModifiedAt, tz)
}

// DisplayZone returns tz when it resolves and timezone.Default otherwise. Responses report the zone
// returned here so a stored zone that stopped resolving is never labelled next to UTC wall-clock times.
func DisplayZone(tz string) string {
	if timezone.IsValidTimezone(tz) {
		return tz
	}

	log.Warn().Str("timezone", tz).Msg("stored timezone does not resolve, rendering in UTC")

	return timezone.Default
}

// RenderTime is the presentation path for stored instants: when tz cannot be resolved the instant is
// shown in UTC rather than failing the whole response.
func RenderTime(t time.Time, tz string) string {
	if t.IsZero() {
		return ""
	}

	formatted, err := timezone.FormatTime(t, tz)
	if err == nil {
		return formatted
	}

	log.Warn().Err(err).Str("timezone", tz).Msg("failed to render time, falling back to UTC")

	return t.UTC().Format(timezone.Layout)
}
