package timezone

import "time"

// Single-location salon: one timezone for the whole system, set once at
// startup from configuration.
const DefaultTimezone = "Asia/Manila"

var salonLocation = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Set switches the salon timezone. Invalid names keep the current one.
func Set(tz string) {
	if IsValid(tz) {
		salonLocation = mustLoad(tz)
	}
}

func Location() *time.Location {
	return salonLocation
}

func Now() time.Time {
	return time.Now().In(salonLocation)
}
