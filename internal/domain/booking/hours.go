package booking

import (
	"errors"
	"strings"
	"time"
)

// Salon hours come from config as a single string like "10:00 AM - 8:00 PM".
// The admin UI historically stored both 12-hour and 24-hour clocks, so both
// are accepted everywhere a clock value is parsed.
var clockLayouts = []string{"3:04 PM", "15:04"}

var errBadClock = errors.New("unrecognized clock value")

// Hours is an open/close pair in minutes from midnight. Close is exclusive.
type Hours struct {
	Open  int
	Close int
}

func parseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, errBadClock
}

// ParseHours splits a salon-hours string on its dash. Any malformed value
// (missing separator, bad clock) yields an error; callers treat that as "no
// hours restriction configured" rather than failing the booking.
func ParseHours(salonHours string) (Hours, error) {
	open, close, ok := strings.Cut(salonHours, "-")
	if !ok {
		return Hours{}, errors.New("salon hours missing separator")
	}

	openMin, err := parseClock(open)
	if err != nil {
		return Hours{}, err
	}
	closeMin, err := parseClock(close)
	if err != nil {
		return Hours{}, err
	}

	return Hours{Open: openMin, Close: closeMin}, nil
}

// Contains reports whether a time of day falls inside the window. A booking
// exactly at closing time is outside.
func (h Hours) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return m >= h.Open && m < h.Close
}
