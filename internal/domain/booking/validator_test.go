package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

var testNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *models.SystemConfig {
	return &models.SystemConfig{
		ID:               models.SystemConfigID,
		SalonHours:       "10:00 AM - 8:00 PM",
		MaxDailyBookings: 40,
	}
}

func TestValidateRejectsPast(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{"yesterday", "2030-05-31", "15:00"},
		{"earlier today", "2030-06-01", "11:00"},
		{"exactly now", "2030-06-01", "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Request{Date: tt.date, Time: tt.time}, testConfig(), 0, testNow)
			assert.True(t, httperr.IsCode(err, "past_booking"))
			assert.Equal(t, "You cannot book an appointment in the past.", httperr.UserMessage(err, ""))
		})
	}
}

func TestValidateInvalidInputBeatsPastCheck(t *testing.T) {
	err := Validate(Request{Date: "31-05-2030", Time: "15:00"}, testConfig(), 0, testNow)
	assert.True(t, httperr.IsCode(err, "invalid_datetime"), "bad input must not be reported as a past booking")

	err = Validate(Request{Date: "2030-06-02", Time: "quarter past"}, testConfig(), 0, testNow)
	assert.True(t, httperr.IsCode(err, "invalid_datetime"))
}

func TestValidateMissingConfig(t *testing.T) {
	err := Validate(Request{Date: "2030-06-02", Time: "15:00"}, nil, 0, testNow)
	require.True(t, httperr.IsCode(err, "config_missing"))

	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindConfigMissing, kind)
}

func TestValidateDailyCapBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDailyBookings = 3
	req := Request{Date: "2030-06-02", Time: "15:00"}

	assert.NoError(t, Validate(req, cfg, 2, testNow), "one below the cap is accepted")

	err := Validate(req, cfg, 3, testNow)
	assert.True(t, httperr.IsCode(err, "daily_limit_reached"), "at the cap is rejected")

	err = Validate(req, cfg, 50, testNow)
	assert.True(t, httperr.IsCode(err, "daily_limit_reached"))
}

func TestValidateZeroCapDisablesCheck(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDailyBookings = 0
	err := Validate(Request{Date: "2030-06-02", Time: "15:00"}, cfg, 1000, testNow)
	assert.NoError(t, err)
}

func TestValidateSalonHours(t *testing.T) {
	req := func(clock string) Request {
		return Request{Date: "2030-06-02", Time: clock}
	}

	assert.NoError(t, Validate(req("10:00"), testConfig(), 0, testNow), "opening time accepted")

	err := Validate(req("09:59"), testConfig(), 0, testNow)
	assert.True(t, httperr.IsCode(err, "outside_salon_hours"), "before open rejected")

	err = Validate(req("20:00"), testConfig(), 0, testNow)
	assert.True(t, httperr.IsCode(err, "outside_salon_hours"), "closing time rejected, close is exclusive")

	// 12-hour request clocks behave identically.
	err = Validate(req("08:00 PM"), testConfig(), 0, testNow)
	assert.True(t, httperr.IsCode(err, "outside_salon_hours"))
}

func TestValidateMalformedHoursSkipsCheck(t *testing.T) {
	cfg := testConfig()
	cfg.SalonHours = "open all day"
	assert.NoError(t, Validate(Request{Date: "2030-06-02", Time: "23:30"}, cfg, 0, testNow))

	cfg.SalonHours = ""
	assert.NoError(t, Validate(Request{Date: "2030-06-02", Time: "23:30"}, cfg, 0, testNow))
}

func TestValidateCheckOrder(t *testing.T) {
	// Past time wins over everything that follows it.
	cfg := testConfig()
	cfg.MaxDailyBookings = 1
	err := Validate(Request{Date: "2030-05-01", Time: "23:00"}, cfg, 5, testNow)
	assert.True(t, httperr.IsCode(err, "past_booking"))

	// Capacity is checked before salon hours.
	err = Validate(Request{Date: "2030-06-02", Time: "23:00"}, cfg, 1, testNow)
	assert.True(t, httperr.IsCode(err, "daily_limit_reached"))
}

func TestValidateReschedule(t *testing.T) {
	assert.NoError(t, ValidateReschedule("2030-06-02", "15:00", testNow))

	err := ValidateReschedule("2030-06-01", "12:00", testNow)
	assert.True(t, httperr.IsCode(err, "past_reschedule"))
	assert.Equal(t, "You cannot reschedule to a past date or time.", httperr.UserMessage(err, ""))

	err = ValidateReschedule("junk", "15:00", testNow)
	assert.True(t, httperr.IsCode(err, "invalid_datetime"))
	assert.Equal(t, "Invalid date or time format.", httperr.UserMessage(err, ""))

	// Reschedule intentionally ignores capacity and hours, so a slot far
	// outside salon hours still passes.
	assert.NoError(t, ValidateReschedule("2030-06-02", "23:45", testNow))
}
