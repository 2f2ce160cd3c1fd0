package service

import (
	"regexp"
	"strings"
)

// fallbackPrefix is used when the attendee somehow has no mhid yet.
const fallbackPrefix = "MH000"

const eventNameMaxLen = 15

var nonWordChars = regexp.MustCompile(`[^\w\s]`)
var whitespace = regexp.MustCompile(`\s+`)

// NormalizeCategory standardizes the category labels the frontend sends.
// "sports" historically renders capitalized while "cultural" stays lower.
func NormalizeCategory(category string) string {
	switch strings.ToLower(category) {
	case "sports":
		return "Sports"
	case "cultural":
		return "cultural"
	default:
		return category
	}
}

// NormalizeSubCategory defaults an empty sub-category.
func NormalizeSubCategory(sub string) string {
	if sub == "" {
		return "no category"
	}
	return sub
}

// FormatEventName compacts an event name into the id-safe short form:
// punctuation and spaces removed, capped at 15 characters.
func FormatEventName(name string) string {
	cleaned := nonWordChars.ReplaceAllString(strings.TrimSpace(name), "")
	cleaned = whitespace.ReplaceAllString(cleaned, "")
	if len(cleaned) > eventNameMaxLen {
		cleaned = cleaned[:eventNameMaxLen]
	}
	return cleaned
}

// BuildRegistrationID produces the human-readable registration id,
// e.g. "MH261 - InterCollegeQui".
func BuildRegistrationID(mhid, eventName string) string {
	prefix := mhid
	if prefix == "" {
		prefix = fallbackPrefix
	}
	return prefix + " - " + FormatEventName(eventName)
}
