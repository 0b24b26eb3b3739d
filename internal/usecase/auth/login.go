package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type LoginResult struct {
	RequireOTP bool
	Token      string
	User       *models.User
	Message    string
}

// Login checks credentials and either grants a session outright or issues
// an OTP, depending on the two-factor security setting.
type Login struct {
	repo   domain.Repository
	issuer *OtpIssuer
	tokens *TokenIssuer
	audit  *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	issuer *OtpIssuer,
	tokens *TokenIssuer,
	auditor *audit.Dispatcher,
) *Login {
	return &Login{
		repo:   repo,
		issuer: issuer,
		tokens: tokens,
		audit:  auditor,
	}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password answer identically.
	if user == nil {
		return nil, httperr.Auth("invalid_credentials", "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, httperr.Auth("invalid_credentials", "Invalid credentials")
	}

	enabled, err := uc.repo.TwoFactorEnabled(ctx)
	if err != nil {
		return nil, err
	}

	if !enabled {
		token, err := uc.tokens.Session(user)
		if err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &user.ID,
			Action:   "user_logged_in",
			Entity:   "user",
			EntityID: &user.ID,
		})

		return &LoginResult{
			RequireOTP: false,
			Token:      token,
			User:       user,
			Message:    "Login successful (2FA disabled).",
		}, nil
	}

	if err := uc.issuer.IssueOrReplace(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResult{
		RequireOTP: true,
		Message:    "OTP sent to your email.",
	}, nil
}
