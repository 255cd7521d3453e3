package dto

import (
	"eventzone/internal/domains/event/model"
	"eventzone/shared"
	"eventzone/shared/constant"
	gDto "eventzone/shared/dto"
	"eventzone/shared/failure"
	gModel "eventzone/shared/model"
	"eventzone/shared/timezone"
	"eventzone/shared/validator"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventRequest is the body of both create and update: an update replaces the whole event.
type EventRequest struct {
	Title      string   `json:"title"       validate:"required,max=255"`
	Timezone   string   `json:"timezone"    validate:"required,timezone"`
	StartAt    string   `json:"start_at"    validate:"required,instant"`
	EndAt      string   `json:"end_at"      validate:"required,instant"`
	ProfileIDs []string `json:"profile_ids" validate:"required,min=1"`
}

// Schedule is a validated EventRequest with its instants parsed.
type Schedule struct {
	Title      string
	Timezone   string
	StartAt    time.Time
	EndAt      time.Time
	ProfileIDs []string
}

// Parse checks the request and converts it to a Schedule. Profile ids are trimmed and deduplicated
// keeping the first occurrence; their existence is checked by the caller.
func (r *EventRequest) Parse() (Schedule, error) {
	title := strings.TrimSpace(r.Title)
	tz := strings.TrimSpace(r.Timezone)

	if title == "" || tz == "" || strings.TrimSpace(r.StartAt) == "" || strings.TrimSpace(r.EndAt) == "" {
		return Schedule{}, failure.BadRequestFromString("Missing required fields: title, timezone, start_at, end_at") // nolint:wrapcheck
	}

	profileIDs := make([]string, 0, len(r.ProfileIDs))
	for _, id := range r.ProfileIDs {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(profileIDs, id) {
			profileIDs = append(profileIDs, id)
		}
	}

	if len(profileIDs) == 0 {
		return Schedule{}, failure.BadRequestFromString("At least one profile must be selected") // nolint:wrapcheck
	}

	if !timezone.IsValidTimezone(tz) {
		return Schedule{}, failure.BadRequestFromString(fmt.Sprintf("Invalid timezone: %s", tz)) // nolint:wrapcheck
	}

	startAt, err := timezone.ParseInstant(r.StartAt)
	if err != nil {
		return Schedule{}, failure.FromTimezone(fmt.Errorf("start_at: %w", err)) // nolint:wrapcheck
	}

	endAt, err := timezone.ParseInstant(r.EndAt)
	if err != nil {
		return Schedule{}, failure.FromTimezone(fmt.Errorf("end_at: %w", err)) // nolint:wrapcheck
	}

	if !endAt.After(startAt) {
		return Schedule{}, failure.BadRequestFromString("End date/time must be after start date/time") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(r); err != nil {
		return Schedule{}, err //nolint:wrapcheck
	}

	return Schedule{
		Title:      title,
		Timezone:   tz,
		StartAt:    startAt,
		EndAt:      endAt,
		ProfileIDs: profileIDs,
	}, nil
}

func (s Schedule) ToModel(now time.Time) model.Event {
	return model.Event{
		ID:         uuid.NewString(),
		Title:      s.Title,
		Timezone:   s.Timezone,
		StartAt:    s.StartAt,
		EndAt:      s.EndAt,
		Metadata:   gModel.NewMetadata(now),
		ProfileIDs: s.ProfileIDs,
	}
}

// UpdatedFields lists the event columns an update writes, modified_at included.
func (s Schedule) UpdatedFields(now time.Time) map[string]any {
	return map[string]any{
		model.FieldTitle:         s.Title,
		model.FieldTimezone:      s.Timezone,
		model.FieldStartAt:       s.StartAt,
		model.FieldEndAt:         s.EndAt,
		constant.FieldModifiedAt: now.UTC(),
	}
}

type EventResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Timezone   string   `json:"timezone"`
	ProfileIDs []string `json:"profile_ids"`
	// StartAt and EndAt are wall-clock strings observed in DisplayTimezone.
	StartAt         string `json:"start_at"`
	EndAt           string `json:"end_at"`
	StartAtUTC      string `json:"start_at_utc"`
	EndAtUTC        string `json:"end_at_utc"`
	DisplayTimezone string `json:"display_timezone"`
	gDto.Metadata
}

// FromModel renders the event in displayTimezone, or in the event's own timezone when empty.
func (r *EventResponse) FromModel(model model.Event, displayTimezone string) {
	if displayTimezone == "" {
		displayTimezone = model.Timezone
	}

	displayTimezone = gDto.DisplayZone(displayTimezone)

	r.ID = model.ID
	r.Title = model.Title
	r.Timezone = model.Timezone
	r.ProfileIDs = model.ProfileIDs
	if r.ProfileIDs == nil {
		r.ProfileIDs = []string{}
	}

	r.StartAt = gDto.RenderTime(model.StartAt, displayTimezone)
	r.EndAt = gDto.RenderTime(model.EndAt, displayTimezone)
	r.StartAtUTC = model.StartAt.UTC().Format(time.RFC3339)
	r.EndAtUTC = model.EndAt.UTC().Format(time.RFC3339)
	r.DisplayTimezone = displayTimezone
	r.Metadata.FromModel(model.Metadata, displayTimezone)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels renders each event in displayTimezone; an empty value keeps each event in its own zone.
func (r *GetEventsResponse) FromModels(models []model.Event, displayTimezone string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod, displayTimezone)
	}
}

// EventChanged is published whenever an event is created, updated or deleted.
type EventChanged struct {
	EventID    string   `json:"event_id"`
	Action     string   `json:"action"`
	Title      string   `json:"title,omitempty"`
	Timezone   string   `json:"timezone,omitempty"`
	StartAt    string   `json:"start_at,omitempty"`
	EndAt      string   `json:"end_at,omitempty"`
	ProfileIDs []string `json:"profile_ids,omitempty"`
	OccurredAt string   `json:"occurred_at"`
}

func NewEventChanged(action string, event model.Event, occurredAt time.Time) EventChanged {
	changed := EventChanged{
		EventID:    event.ID,
		Action:     action,
		Title:      event.Title,
		Timezone:   event.Timezone,
		ProfileIDs: event.ProfileIDs,
		OccurredAt: occurredAt.UTC().Format(time.RFC3339Nano),
	}

	if !event.StartAt.IsZero() {
		changed.StartAt = event.StartAt.UTC().Format(time.RFC3339)
	}

	if !event.EndAt.IsZero() {
		changed.EndAt = event.EndAt.UTC().Format(time.RFC3339)
	}

	return changed
}

// RangeFilter selects the events overlapping [from, to]. Either bound may be empty.
func RangeFilter(from, to string) (gDto.FilterGroup, error) {
	filter := gDto.And()

	if err := validator.ValidateVar(constant.RequestParamFrom, from, "omitempty,instant"); err != nil {
		return filter, err //nolint:wrapcheck
	}

	if err := validator.ValidateVar(constant.RequestParamTo, to, "omitempty,instant"); err != nil {
		return filter, err //nolint:wrapcheck
	}

	var fromAt, toAt time.Time

	if from != "" {
		fromAt, _ = timezone.ParseInstant(from)

		filter.Add(gDto.Filter{
			ArgName:  "range_from",
			Field:    model.FieldEndAt,
			Value:    fromAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if to != "" {
		toAt, _ = timezone.ParseInstant(to)

		filter.Add(gDto.Filter{
			ArgName:  "range_to",
			Field:    model.FieldStartAt,
			Value:    toAt,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	if from != "" && to != "" && toAt.Before(fromAt) {
		return gDto.And(), failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	return filter, nil
}

// CalendarExport is an iCalendar document ready to be served as a download.
type CalendarExport struct {
	FileName string
	Content  string
}
