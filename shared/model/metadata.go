package model

import "time"

// Metadata holds the audit stamps shared by every table. Values are absolute instants stored as
// timestamptz; rendering into a wall clock happens at read time.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

func NewMetadata(now time.Time) Metadata {
	return Metadata{
		CreatedAt:  now.UTC(),
		ModifiedAt: now.UTC(),
	}
}
