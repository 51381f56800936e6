package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// BatchSpan is the number of years between a cohort's start and graduation.
	BatchSpan = 4
	// MaxBatchIDLength bounds batch identifiers.
	MaxBatchIDLength = 20
)

var (
	batchIDPattern    = regexp.MustCompile(`^[A-Z0-9]+$`)
	batchRangePattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
	embeddedYear      = regexp.MustCompile(`20\d{2}`)
)

// NormalizeBatchID trims and upper-cases a batch identifier.
func NormalizeBatchID(batchID string) string {
	return strings.ToUpper(strings.TrimSpace(batchID))
}

// ValidBatchID reports whether batchID is non-empty uppercase alphanumeric
// and at most MaxBatchIDLength characters long.
func ValidBatchID(batchID string) bool {
	return len(batchID) <= MaxBatchIDLength && batchIDPattern.MatchString(batchID)
}

// ValidBatchRange reports whether batchRange is "YYYY-YYYY" with the end after the start.
func ValidBatchRange(batchRange string) bool {
	m := batchRangePattern.FindStringSubmatch(batchRange)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return end > start
}

// GraduationYear extracts the first 20xx year embedded in batchID. When none
// is present the year of now is used.
func GraduationYear(batchID string, now time.Time) int {
	if match := embeddedYear.FindString(batchID); match != "" {
		year, err := strconv.Atoi(match)
		if err == nil {
			return year
		}
	}
	return now.Year()
}

// BatchRange formats the range of a cohort graduating in year, e.g. 2023-2027.
func BatchRange(year int) string {
	return fmt.Sprintf("%d-%d", year-BatchSpan, year)
}

// RangeEndYear returns the graduation year of a "YYYY-YYYY" range.
func RangeEndYear(batchRange string) (int, bool) {
	m := batchRangePattern.FindStringSubmatch(batchRange)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return year, true
}
