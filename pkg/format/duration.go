package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DurationToTimeString renders seconds as HH:MM:SS. Hours are not capped, so
// values of 100 hours and more produce a longer hour field.
func DurationToTimeString(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	rest := seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, rest)
}

// ParseTimeString is the inverse of DurationToTimeString.
func ParseTimeString(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errors.Errorf("invalid time string %q", s)
	}

	var values [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 {
			return 0, errors.Errorf("invalid time string %q", s)
		}
		values[i] = v
	}

	if values[1] > 59 || values[2] > 59 {
		return 0, errors.Errorf("invalid time string %q", s)
	}

	return values[0]*3600 + values[1]*60 + values[2], nil
}
