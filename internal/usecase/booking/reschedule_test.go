package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:      12,
		UserID:  3,
		Service: "Haircut",
		Date:    "2030-06-02",
		Time:    "15:00",
		Status:  "Pending",
	}
}

func TestRescheduleSuccess(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(12)).Return(pendingAppointment(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewRescheduleAppointment(repo, testDispatcher())
	ap, err := uc.Execute(context.Background(), 12, "2030-06-05", "11:30")

	require.NoError(t, err)
	assert.Equal(t, "2030-06-05", ap.Date)
	assert.Equal(t, "11:30", ap.Time)
	assert.Equal(t, "Rescheduled", ap.Status)
	repo.AssertExpectations(t)
}

func TestRescheduleIntoPast(t *testing.T) {
	repo := new(mockRepo)

	uc := NewRescheduleAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 12, "2001-01-01", "11:30")

	assert.True(t, httperr.IsCode(err, "past_reschedule"))
	repo.AssertNotCalled(t, "GetAppointment", mock.Anything, mock.Anything)
}

func TestRescheduleBadInput(t *testing.T) {
	repo := new(mockRepo)

	uc := NewRescheduleAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 12, "2030-06-05", "half eleven")

	assert.True(t, httperr.IsCode(err, "invalid_datetime"))
	assert.Equal(t, "Invalid date or time format.", httperr.UserMessage(err, ""))
}

func TestRescheduleUnknownAppointment(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewRescheduleAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 99, "2030-06-05", "11:30")

	assert.True(t, httperr.IsCode(err, "appointment_not_found"))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestRescheduleSkipsCapacityAndHours(t *testing.T) {
	// The reschedule path only applies the past-time rule, so a slot
	// outside salon hours still goes through.
	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(12)).Return(pendingAppointment(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewRescheduleAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 12, "2030-06-05", "23:45")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetConfig", mock.Anything)
	repo.AssertNotCalled(t, "CountActiveForDate", mock.Anything, mock.Anything)
}
