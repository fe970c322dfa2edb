package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("dates must be RFC3339 or YYYY-MM-DD")

// parseDate accepts RFC3339 timestamps and plain calendar dates. An empty
// string yields the zero time so callers can apply their own "required" rule.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
