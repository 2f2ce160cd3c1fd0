package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegistrationStatus(t *testing.T) {
	assert.True(t, IsValidRegistrationStatus(StatusPending))
	assert.True(t, IsValidRegistrationStatus(StatusConfirmed))
	assert.True(t, IsValidRegistrationStatus(StatusCancelled))
	assert.False(t, IsValidRegistrationStatus("Confirmed"))
	assert.False(t, IsValidRegistrationStatus("waitlisted"))
	assert.False(t, IsValidRegistrationStatus(""))
}
