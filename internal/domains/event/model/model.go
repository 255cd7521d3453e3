package model

import (
	"eventzone/shared/model"
	"time"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldTimezone = "timezone"
	FieldStartAt  = "start_at"
	FieldEndAt    = "end_at"
)

const (
	LinkTableName  = "event_profiles"
	LinkEntityName = "event_profile"

	FieldEventID   = "event_id"
	FieldProfileID = "profile_id"
)

// Event is a titled time range. StartAt and EndAt are absolute instants; Timezone is the zone the
// event was captured in and is the default zone it is displayed in.
type Event struct {
	ID       string    `db:"id"`
	Title    string    `db:"title"`
	Timezone string    `db:"timezone"`
	StartAt  time.Time `db:"start_at"`
	EndAt    time.Time `db:"end_at"`
	model.Metadata

	// ProfileIDs is loaded from event_profiles, it is not a column of events.
	ProfileIDs []string
}

// EventProfile links an event to one of its participants.
type EventProfile struct {
	EventID   string `db:"event_id"`
	ProfileID string `db:"profile_id"`
}

// ProfileEvent is an event read through its link to a single profile.
type ProfileEvent struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Timezone  string    `db:"timezone"`
	StartAt   time.Time `db:"start_at"`
	EndAt     time.Time `db:"end_at"`
	ProfileID string    `db:"profile_id" table:"event_profiles"`
	model.Metadata
}

func (ProfileEvent) GetJoinQuery() string {
	return "JOIN " + LinkTableName + " ON " + LinkTableName + "." + FieldEventID + " = " + TableName + "." + FieldID
}

func (p ProfileEvent) ToEvent() Event {
	return Event{
		ID:       p.ID,
		Title:    p.Title,
		Timezone: p.Timezone,
		StartAt:  p.StartAt,
		EndAt:    p.EndAt,
		Metadata: p.Metadata,
	}
}

// Links builds the join rows of the event.
func (e Event) Links() []EventProfile {
	links := make([]EventProfile, len(e.ProfileIDs))
	for i, profileID := range e.ProfileIDs {
		links[i] = EventProfile{EventID: e.ID, ProfileID: profileID}
	}

	return links
}
