package model

import "eventzone/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID       = "id"
	FieldName     = "name"
	FieldTimezone = "timezone"
)

// Profile is a person together with the timezone their events are viewed in.
type Profile struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Timezone string `db:"timezone"`
	model.Metadata
}
