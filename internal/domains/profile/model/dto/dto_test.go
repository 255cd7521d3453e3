package dto_test

import (
	"eventzone/internal/domains/profile/model"
	"eventzone/internal/domains/profile/model/dto"
	gModel "eventzone/shared/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateProfileRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateProfileRequest
		fallback string
		expected dto.CreateProfileRequest
	}{
		{
			name:     "trims name and keeps timezone",
			req:      dto.CreateProfileRequest{Name: "  Alice  ", Timezone: " Asia/Tokyo "},
			fallback: "UTC",
			expected: dto.CreateProfileRequest{Name: "Alice", Timezone: "Asia/Tokyo"},
		},
		{
			name:     "empty timezone uses fallback",
			req:      dto.CreateProfileRequest{Name: "Bob"},
			fallback: "UTC",
			expected: dto.CreateProfileRequest{Name: "Bob", Timezone: "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(tt.fallback)
			assert.Equal(t, tt.expected, tt.req)
		})
	}
}

func TestCreateProfileRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	req := dto.CreateProfileRequest{Name: "Alice", Timezone: "America/New_York"}

	profile := req.ToModel(now)

	assert.NoError(t, uuid.Validate(profile.ID))
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "America/New_York", profile.Timezone)
	assert.Equal(t, now, profile.CreatedAt)
	assert.Equal(t, now, profile.ModifiedAt)
}

func TestProfileResponse_FromModel(t *testing.T) {
	stamp := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	var res dto.ProfileResponse
	res.FromModel(model.Profile{
		ID:       "p1",
		Name:     "Alice",
		Timezone: "America/New_York",
		Metadata: gModel.Metadata{CreatedAt: stamp, ModifiedAt: stamp},
	})

	assert.Equal(t, "p1", res.ID)
	assert.Equal(t, "2024-01-15 09:00:00", res.CreatedAt)
	assert.Equal(t, "2024-01-15 09:00:00", res.ModifiedAt)
	assert.Empty(t, res.CurrentTime)
}

func TestGetProfilesResponse_FromModels(t *testing.T) {
	var res dto.GetProfilesResponse
	res.FromModels([]model.Profile{{ID: "a", Timezone: "UTC"}, {ID: "b", Timezone: "Asia/Tokyo"}}, 21, 10)

	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Profiles, 2)
	assert.Equal(t, "b", res.Profiles[1].ID)
}
