package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		open    int
		close   int
		wantErr bool
	}{
		{"twelve hour", "10:00 AM - 8:00 PM", 10 * 60, 20 * 60, false},
		{"twenty four hour", "09:30 - 18:00", 9*60 + 30, 18 * 60, false},
		{"mixed clocks", "9:00 AM - 21:00", 9 * 60, 21 * 60, false},
		{"no separator", "10:00 AM to 8:00 PM", 0, 0, true},
		{"garbage open", "soon - 8:00 PM", 0, 0, true},
		{"garbage close", "10:00 AM - late", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHours(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.open, h.Open)
			assert.Equal(t, tt.close, h.Close)
		})
	}
}

func TestHoursContains(t *testing.T) {
	h, err := ParseHours("10:00 AM - 8:00 PM")
	require.NoError(t, err)

	at := func(clock string) time.Time {
		ts, err := time.Parse("2006-01-02 15:04", "2030-06-01 "+clock)
		require.NoError(t, err)
		return ts
	}

	assert.True(t, h.Contains(at("10:00")), "opening time is bookable")
	assert.True(t, h.Contains(at("19:59")), "last minute before close")
	assert.False(t, h.Contains(at("20:00")), "close is exclusive")
	assert.False(t, h.Contains(at("09:59")), "before open")
	assert.False(t, h.Contains(at("23:00")))
}
