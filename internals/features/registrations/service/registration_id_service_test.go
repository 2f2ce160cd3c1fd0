package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRegistrationID(t *testing.T) {
	cases := []struct {
		name      string
		mhid      string
		eventName string
		want      string
	}{
		{"long name with punctuation", "MH261", "Inter College Quiz!!", "MH261 - InterCollegeQui"},
		{"short name", "MH2642", "Chess", "MH2642 - Chess"},
		{"missing mhid falls back", "", "Chess", "MH000 - Chess"},
		{"leading and trailing spaces", "MH263", "  Solo Dance  ", "MH263 - SoloDance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildRegistrationID(tc.mhid, tc.eventName))
		})
	}
}

func TestFormatEventName(t *testing.T) {
	assert.Equal(t, "InterCollegeQui", FormatEventName("Inter College Quiz!!"))
	assert.Equal(t, "100mSprint", FormatEventName("100m Sprint"))
	assert.Equal(t, "", FormatEventName("!!!"))
	assert.Len(t, FormatEventName("A Very Long Event Name Indeed"), 15)
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Sports", NormalizeCategory("sports"))
	assert.Equal(t, "Sports", NormalizeCategory("SPORTS"))
	assert.Equal(t, "cultural", NormalizeCategory("Cultural"))
	assert.Equal(t, "technical", NormalizeCategory("technical"))
}

func TestNormalizeSubCategory(t *testing.T) {
	assert.Equal(t, "no category", NormalizeSubCategory(""))
	assert.Equal(t, "men", NormalizeSubCategory("men"))
}
