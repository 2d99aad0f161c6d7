package application

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate coerces an optional YYYY-MM-DD string into a nullable date.
// Empty strings become nil rather than an error; that is the normalization
// rule for every date field in the system.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, invalidf("%s must be a YYYY-MM-DD date", field)
	}
	return &t, nil
}

// requireTrimmed returns the trimmed value or a validation error when the
// field is empty after trimming.
func requireTrimmed(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalidf("%s is required", field)
	}
	return s, nil
}

// monthsBetween counts whole months from start to end, flooring at zero.
// Used for the employment duration shown next to each position.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
