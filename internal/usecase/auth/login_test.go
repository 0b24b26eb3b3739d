package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

func testUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:           7,
		Name:         "Ana Reyes",
		Email:        "ana@gmail.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
}

func TestLoginTwoFactorDisabledGrantsSession(t *testing.T) {
	repo := new(mockRepo)
	sender := new(recordingSender)
	user := testUser(t, "secret123")

	repo.On("GetUserByEmail", mock.Anything, "ana@gmail.com").Return(user, nil)
	repo.On("TwoFactorEnabled", mock.Anything).Return(false, nil)

	uc := NewLogin(repo, NewOtpIssuer(repo, sender), NewTokenIssuer("test-secret"), testDispatcher())

	res, err := uc.Execute(context.Background(), "ana@gmail.com", "secret123")
	require.NoError(t, err)
	require.False(t, res.RequireOTP)
	require.NotEmpty(t, res.Token)
	require.Equal(t, user, res.User)
	require.Equal(t, "Login successful (2FA disabled).", res.Message)

	repo.AssertNotCalled(t, "UpsertOtp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginTwoFactorEnabledIssuesOtp(t *testing.T) {
	repo := new(mockRepo)
	sender := new(recordingSender)
	user := testUser(t, "secret123")

	repo.On("GetUserByEmail", mock.Anything, "ana@gmail.com").Return(user, nil)
	repo.On("TwoFactorEnabled", mock.Anything).Return(true, nil)
	repo.On("UpsertOtp", mock.Anything, user.ID, mock.MatchedBy(func(code string) bool {
		return len(code) == 4
	}), mock.Anything).Return(nil)

	uc := NewLogin(repo, NewOtpIssuer(repo, sender), NewTokenIssuer("test-secret"), testDispatcher())

	res, err := uc.Execute(context.Background(), "ana@gmail.com", "secret123")
	require.NoError(t, err)
	require.True(t, res.RequireOTP)
	require.Empty(t, res.Token)
	require.Nil(t, res.User)
	require.Equal(t, "OTP sent to your email.", res.Message)

	repo.AssertExpectations(t)

	require.Eventually(t, func() bool { return sender.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestLoginRejectsUnknownEmailAndWrongPassword(t *testing.T) {
	repo := new(mockRepo)
	user := testUser(t, "secret123")

	repo.On("GetUserByEmail", mock.Anything, "nobody@gmail.com").Return(nil, nil)
	repo.On("GetUserByEmail", mock.Anything, "ana@gmail.com").Return(user, nil)

	uc := NewLogin(repo, NewOtpIssuer(repo, new(recordingSender)), NewTokenIssuer("test-secret"), testDispatcher())

	_, err := uc.Execute(context.Background(), "nobody@gmail.com", "whatever")
	require.True(t, httperr.IsCode(err, "invalid_credentials"))
	require.Equal(t, "Invalid credentials", httperr.UserMessage(err, ""))

	_, err = uc.Execute(context.Background(), "ana@gmail.com", "wrongpass")
	require.True(t, httperr.IsCode(err, "invalid_credentials"))

	repo.AssertNotCalled(t, "TwoFactorEnabled", mock.Anything)
}
