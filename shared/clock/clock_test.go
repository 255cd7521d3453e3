package clock_test

import (
	"eventzone/shared/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClockIsUTC(t *testing.T) {
	now := clock.NewSystem().Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, time.UTC, now.Location())
}

func TestFixedClock(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	frozen := time.Date(2024, 1, 15, 19, 30, 45, 0, loc)

	c := clock.NewFixed(frozen)

	assert.True(t, frozen.Equal(c.Now()))
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, c.Now(), c.Now())
}
