package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessLevelFor(t *testing.T) {
	assert.Equal(t, "full", AccessLevelFor("core"))
	assert.Equal(t, "lead", AccessLevelFor("lead"))
	assert.Equal(t, "limited", AccessLevelFor("volunteer"))
	assert.Equal(t, "limited", AccessLevelFor(""))
}
