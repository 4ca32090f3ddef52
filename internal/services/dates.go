package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatRentalDate renders t as YYYY-M-D, without zero padding.
func FormatRentalDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// dayOfMonth extracts the day component of a YYYY-M-D date.
func dayOfMonth(date string) (int, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed rental date %q", date)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("malformed rental date %q: %w", date, err)
	}
	return day, nil
}

// DelayFee is today's day of month minus the rent date's day of month.
// Month and year are ignored, so the result can be negative when a rental
// crosses a month boundary.
func DelayFee(rentDate string, today time.Time) (int, error) {
	rentDay, err := dayOfMonth(rentDate)
	if err != nil {
		return 0, err
	}
	return today.Day() - rentDay, nil
}

// hasPrefixFold reports whether s starts with prefix, ignoring case.
func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
