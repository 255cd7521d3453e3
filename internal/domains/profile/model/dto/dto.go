package dto

import (
	"eventzone/internal/domains/profile/model"
	"eventzone/shared"
	gDto "eventzone/shared/dto"
	gModel "eventzone/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

// Normalize trims the input and fills the timezone with fallback when none was sent.
func (c *CreateProfileRequest) Normalize(fallback string) {
	c.Name = strings.TrimSpace(c.Name)
	c.Timezone = strings.TrimSpace(c.Timezone)

	if c.Timezone == "" {
		c.Timezone = fallback
	}
}

func (c *CreateProfileRequest) ToModel(now time.Time) model.Profile {
	return model.Profile{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Timezone: c.Timezone,
		Metadata: gModel.NewMetadata(now),
	}
}

type UpdateTimezoneRequest struct {
	Timezone string `db:"timezone" json:"timezone" validate:"required,timezone"`
}

type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	// CurrentTime is the wall clock in Timezone when the response was built.
	CurrentTime string `json:"current_time,omitempty"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(model model.Profile) {
	r.ID = model.ID
	r.Name = model.Name
	r.Timezone = model.Timezone
	r.Metadata.FromModel(model.Metadata, model.Timezone)
}

type GetProfilesResponse struct {
	Profiles  []ProfileResponse `json:"profiles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProfilesResponse) FromModels(models []model.Profile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Profiles = make([]ProfileResponse, len(models))
	for i, mod := range models {
		r.Profiles[i].FromModel(mod)
	}
}
