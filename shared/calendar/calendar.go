// Package calendar renders events as an iCalendar (RFC 5545) feed.
package calendar

import (
	"eventzone/shared/timezone"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//eventzone//Event Scheduler//EN"

type Entry struct {
	UID        string
	Title      string
	Timezone   string
	StartAt    time.Time
	EndAt      time.Time
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Feed describes the calendar owner. Timezone is advertised through X-WR-TIMEZONE so clients show the
// events in it; DTSTART and DTEND stay in UTC.
type Feed struct {
	Name     string
	Timezone string
	Entries  []Entry
}

// Render serializes the feed. stamp is written as DTSTAMP on every event.
func Render(feed Feed, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(feed.Name)

	if timezone.IsValidTimezone(feed.Timezone) {
		cal.SetXWRTimezone(feed.Timezone)
	}

	for _, entry := range feed.Entries {
		event := cal.AddEvent(entry.UID)
		event.SetSummary(entry.Title)
		event.SetStartAt(entry.StartAt)
		event.SetEndAt(entry.EndAt)
		event.SetDtStampTime(stamp)

		if !entry.CreatedAt.IsZero() {
			event.SetCreatedTime(entry.CreatedAt)
		}

		if !entry.ModifiedAt.IsZero() {
			event.SetModifiedAt(entry.ModifiedAt)
		}

		event.SetDescription(describe(entry))
	}

	return cal.Serialize()
}

// describe keeps the capture timezone visible to clients that ignore X-WR-TIMEZONE.
func describe(entry Entry) string {
	start, err := timezone.FormatTime(entry.StartAt, entry.Timezone)
	if err != nil {
		return ""
	}

	end, err := timezone.FormatTime(entry.EndAt, entry.Timezone)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s to %s (%s)", start, end, entry.Timezone)
}
