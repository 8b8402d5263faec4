package hotel

import (
	"errors"
	"testing"
)

func TestParseStayRangeNights(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		nights   int
	}{
		{"2024-03-01", "2024-03-04", 3},
		{"2024-03-01", "2024-03-02", 1},
		{"2024-12-31", "2025-01-02", 2},
	}
	for _, c := range cases {
		in, out, nights, err := parseStayRange(c.checkIn, c.checkOut)
		if err != nil {
			t.Fatalf("parseStayRange(%q, %q): %v", c.checkIn, c.checkOut, err)
		}
		if nights != c.nights {
			t.Errorf("parseStayRange(%q, %q) nights = %d, want %d", c.checkIn, c.checkOut, nights, c.nights)
		}
		if got := in.Format(isoDate); got != c.checkIn {
			t.Errorf("check-in round trip = %q, want %q", got, c.checkIn)
		}
		if got := out.Format(isoDate); got != c.checkOut {
			t.Errorf("check-out round trip = %q, want %q", got, c.checkOut)
		}
	}
}

func TestParseStayRangeRejects(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"equal dates", "2024-03-01", "2024-03-01"},
		{"reversed", "2024-03-04", "2024-03-01"},
		{"malformed check-in", "03/01/2024", "2024-03-04"},
		{"malformed check-out", "2024-03-01", "tomorrow"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, _, err := parseStayRange(c.checkIn, c.checkOut)
			if !errors.Is(err, ErrInvalidDateRange) {
				t.Fatalf("parseStayRange(%q, %q) err = %v, want ErrInvalidDateRange", c.checkIn, c.checkOut, err)
			}
		})
	}
}
