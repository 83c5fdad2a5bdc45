package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestColorTagValid(t *testing.T) {
	for _, tag := range AllColorTags() {
		assert.True(t, tag.Valid(), "palette key %q should be valid", tag)
	}
	assert.False(t, ColorTag("mauve").Valid())
	assert.False(t, ColorTag("").Valid())
}

func TestTaskExpired(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.Local)
	yesterday := time.Date(2026, time.October, 18, 23, 0, 0, 0, time.Local)
	today := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)

	assert.False(t, (&Task{}).Expired(now), "no expiration never expires")
	assert.True(t, (&Task{ExpiresAt: &yesterday}).Expired(now))
	assert.False(t, (&Task{ExpiresAt: &today}).Expired(now), "a task expiring today is still current")
}
