package service

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// MHIDPrefix is the festival-year prefix every attendee id carries.
const MHIDPrefix = "MH26"

const (
	probeLimit          = 25
	randomFallbackTries = 10
)

// ParseMHIDNumber extracts the numeric suffix of an mhid.
// Returns 0 when the suffix is absent or not numeric.
func ParseMHIDNumber(mhid string) int {
	suffix := strings.TrimPrefix(mhid, MHIDPrefix)
	if suffix == mhid || suffix == "" {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatMHID renders the numeric suffix as a full id.
func FormatMHID(n int) string {
	return fmt.Sprintf("%s%d", MHIDPrefix, n)
}

// GenerateMHID issues the next free attendee id: current max suffix + 1,
// probed upward on collision. A random 4-digit suffix is the defensive
// fallback; exhaustion of the probe window is implausible under normal
// traffic but two concurrent signups can land on the same candidate.
func GenerateMHID(db *gorm.DB) (string, error) {
	var maxN int
	err := db.Raw(
		`SELECT COALESCE(MAX(SUBSTRING(mhid FROM ?)::int), 0) FROM users WHERE mhid ~ ?`,
		len(MHIDPrefix)+1, "^"+MHIDPrefix+"[0-9]+$",
	).Scan(&maxN).Error
	if err != nil {
		return "", err
	}

	candidate := maxN + 1
	for attempt := 0; attempt < probeLimit; attempt++ {
		id := FormatMHID(candidate)
		taken, err := mhidExists(db, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		candidate++
	}

	log.Printf("[WARN] mhid probe window exhausted at %d, falling back to random suffix", candidate)
	for i := 0; i < randomFallbackTries; i++ {
		id := fmt.Sprintf("%s%04d", MHIDPrefix, rand.Intn(10000))
		taken, err := mhidExists(db, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not allocate a free mhid")
}

func mhidExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Table("users").Where("mhid = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
