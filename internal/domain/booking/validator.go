package booking

import (
	"time"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

// Request is the slot a customer asked for.
type Request struct {
	Date string // 2006-01-02
	Time string // 15:04
}

// At combines the request's date and time into an instant in the salon's
// timezone. Booking times arrive as 24-hour clocks but 12-hour values are
// tolerated the same way salon hours are.
func At(date, clock string, loc *time.Location) (time.Time, error) {
	m, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(m) * time.Minute), nil
}

// Validate applies the booking rules in order, short-circuiting on the first
// failure:
//
//  1. unparsable date/time
//  2. past-time (booking exactly now is rejected)
//  3. missing system configuration
//  4. daily cap, only when configured above zero; activeCount is the
//     non-cancelled count for the requested date read by the caller inside
//     the same transaction as the insert
//  5. salon hours, skipped entirely when the stored string does not parse
func Validate(req Request, cfg *models.SystemConfig, activeCount int64, now time.Time) error {
	start, err := At(req.Date, req.Time, now.Location())
	if err != nil {
		return httperr.Validation("invalid_datetime", "Invalid date or time format.")
	}

	if !start.After(now) {
		return httperr.Business("past_booking", "You cannot book an appointment in the past.")
	}

	if cfg == nil {
		return httperr.ConfigMissing("config_missing", "System configuration not found.")
	}

	if cfg.MaxDailyBookings > 0 && activeCount >= int64(cfg.MaxDailyBookings) {
		return httperr.Business("daily_limit_reached", "Daily booking limit reached. Please choose another date.")
	}

	if cfg.SalonHours != "" {
		if hours, err := ParseHours(cfg.SalonHours); err == nil && !hours.Contains(start) {
			return httperr.Business("outside_salon_hours", "Selected time is outside salon hours.")
		}
	}

	return nil
}

// ValidateReschedule applies only the past-time rule to the new slot.
// Capacity and salon hours are not re-checked on a move.
func ValidateReschedule(date, clock string, now time.Time) error {
	start, err := At(date, clock, now.Location())
	if err != nil {
		return httperr.Validation("invalid_datetime", "Invalid date or time format.")
	}
	if !start.After(now) {
		return httperr.Business("past_reschedule", "You cannot reschedule to a past date or time.")
	}
	return nil
}
