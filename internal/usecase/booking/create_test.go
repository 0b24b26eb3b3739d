package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/booking"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SystemConfig), args.Error(1)
}

func (m *mockRepo) CountActiveForDate(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	if args.Error(0) == nil {
		ap.ID = 77
	}
	return args.Error(0)
}

func (m *mockRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(m)
}

func openConfig(cap int) *models.SystemConfig {
	return &models.SystemConfig{
		ID:               models.SystemConfigID,
		SalonHours:       "10:00 AM - 8:00 PM",
		MaxDailyBookings: cap,
	}
}

func createInput(date, clock string) CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:  3,
		Service: "Haircut",
		Stylist: "Maria",
		Date:    date,
		Time:    clock,
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(openConfig(40), nil)
	repo.On("CountActiveForDate", mock.Anything, "2030-06-02").Return(int64(5), nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateAppointment(repo, testDispatcher())
	ap, err := uc.Execute(context.Background(), createInput("2030-06-02", "15:00"))

	require.NoError(t, err)
	assert.Equal(t, uint(77), ap.ID)
	assert.Equal(t, "Pending", ap.Status)
	assert.Equal(t, "2030-06-02", ap.Date)
	assert.Equal(t, "15:00", ap.Time)
	assert.Equal(t, uint(3), ap.UserID)
	repo.AssertExpectations(t)
}

func TestCreateAppointmentLastSlotThenFull(t *testing.T) {
	// Cap of one: the first booking takes the last slot, the second is
	// turned away.
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(openConfig(1), nil)
	repo.On("CountActiveForDate", mock.Anything, "2030-06-02").Return(int64(0), nil).Once()
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewCreateAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), createInput("2030-06-02", "15:00"))
	require.NoError(t, err)

	repo.On("CountActiveForDate", mock.Anything, "2030-06-02").Return(int64(1), nil).Once()
	_, err = uc.Execute(context.Background(), createInput("2030-06-02", "16:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "daily_limit_reached"))
	assert.Equal(t, "Daily booking limit reached. Please choose another date.",
		httperr.UserMessage(err, ""))
	repo.AssertExpectations(t)
}

func TestCreateAppointmentMissingConfig(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(nil, nil)

	uc := NewCreateAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), createInput("2030-06-02", "15:00"))

	assert.True(t, httperr.IsCode(err, "config_missing"))
	repo.AssertNotCalled(t, "CountActiveForDate", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointmentPastSlot(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(openConfig(40), nil)
	repo.On("CountActiveForDate", mock.Anything, "2001-01-01").Return(int64(0), nil)

	uc := NewCreateAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), createInput("2001-01-01", "15:00"))

	assert.True(t, httperr.IsCode(err, "past_booking"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointmentZeroCapSkipsCount(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(openConfig(0), nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), createInput("2030-06-02", "15:00"))

	require.NoError(t, err)
	repo.AssertNotCalled(t, "CountActiveForDate", mock.Anything, mock.Anything)
}

func TestCreateAppointmentOutsideHours(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetConfig", mock.Anything).Return(openConfig(40), nil)
	repo.On("CountActiveForDate", mock.Anything, "2030-06-02").Return(int64(0), nil)

	uc := NewCreateAppointment(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), createInput("2030-06-02", "21:00"))

	assert.True(t, httperr.IsCode(err, "outside_salon_hours"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}
