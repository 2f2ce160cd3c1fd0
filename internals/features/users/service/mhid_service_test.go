package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMHIDNumber(t *testing.T) {
	cases := []struct {
		mhid string
		want int
	}{
		{"MH261", 1},
		{"MH26042", 42},
		{"MH26", 0},
		{"MH26abc", 0},
		{"XX261", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseMHIDNumber(tc.mhid), "mhid %q", tc.mhid)
	}
}

func TestFormatMHID(t *testing.T) {
	assert.Equal(t, "MH261", FormatMHID(1))
	assert.Equal(t, "MH26120", FormatMHID(120))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 9, 10, 999, 12345} {
		assert.Equal(t, n, ParseMHIDNumber(FormatMHID(n)))
	}
}
