package hotel

import (
	"errors"
	"fmt"
	"time"
)

// isoDate is the accepted wire format for check-in/check-out dates.
const isoDate = "2006-01-02"

// ErrInvalidDateRange is returned for malformed dates and for ranges
// where the check-out date is not strictly after the check-in date.
var ErrInvalidDateRange = errors.New("invalid date range")

// parseStayRange parses a pair of ISO dates and returns them together
// with the number of nights in the half-open range [checkIn, checkOut).
// A stay must last at least one night; zero or negative ranges are
// rejected before any reservation is created.
func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, int, error) {
	in, err := time.Parse(isoDate, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("check-in %q: %w", checkIn, ErrInvalidDateRange)
	}
	out, err := time.Parse(isoDate, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("check-out %q: %w", checkOut, ErrInvalidDateRange)
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("check-out must be after check-in: %w", ErrInvalidDateRange)
	}
	return in, out, nights, nil
}
