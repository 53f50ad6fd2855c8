package shared

import (
	"fmt"
	"strconv"
	"time"
)

// ParseID parses a positional numeric identifier argument
func ParseID(name, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", name, arg)
	}
	return id, nil
}

// ParseTime parses a time filter value, accepting epoch seconds,
// a calendar date, or a full RFC 3339 timestamp
func ParseTime(name, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
		return epoch, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Unix(), nil
	}

	return 0, fmt.Errorf("invalid %s value: %q, use epoch seconds, YYYY-MM-DD or RFC 3339", name, value)
}
