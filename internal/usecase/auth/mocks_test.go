package auth

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/princessangelsalon/salon-api/internal/audit"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockRepo) CreateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *mockRepo) UpdateUserPassword(ctx context.Context, userID uint, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *mockRepo) TwoFactorEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) UpsertOtp(ctx context.Context, userID uint, code string, createdAt time.Time) error {
	args := m.Called(ctx, userID, code, createdAt)
	return args.Error(0)
}

func (m *mockRepo) GetOtpByCode(ctx context.Context, userID uint, code string) (*models.OtpRecord, error) {
	args := m.Called(ctx, userID, code)
	rec, _ := args.Get(0).(*models.OtpRecord)
	return rec, args.Error(1)
}

func (m *mockRepo) DeleteOtpsForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// recordingSender collects sent OTP mails. IssueOrReplace mails from a
// goroutine, so access is locked.
type recordingSender struct {
	mu    sync.Mutex
	sends []string
}

func (s *recordingSender) SendOtp(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sends = append(s.sends, email+":"+code)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sends)
}

type fixedCooldown struct {
	wait time.Duration
	err  error
}

func (c *fixedCooldown) Allow(ctx context.Context, key string) (time.Duration, error) {
	return c.wait, c.err
}

type nopSink struct{}

func (nopSink) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}
