package auth

import (
	"context"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

type VerifyOtpResult struct {
	User  *models.User
	Token string

	// ResetToken is set only when the caller asked for a password-reset
	// grant, i.e. the forgot-password flow.
	ResetToken string
}

// VerifyOtp checks a submitted code against the user's live OTP record.
// The record is left in place; expiry alone retires it, so a repeated
// submit of an expired code fails the same way every time.
type VerifyOtp struct {
	repo   domain.Repository
	tokens *TokenIssuer
	audit  *audit.Dispatcher
}

func NewVerifyOtp(
	repo domain.Repository,
	tokens *TokenIssuer,
	auditor *audit.Dispatcher,
) *VerifyOtp {
	return &VerifyOtp{repo: repo, tokens: tokens, audit: auditor}
}

func (uc *VerifyOtp) Execute(ctx context.Context, email, code string, forReset bool) (*VerifyOtpResult, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.NotFound("user_not_found", "User not found.")
	}

	rec, err := uc.repo.GetOtpByCode(ctx, user.ID, code)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, httperr.Auth("invalid_otp", "Invalid OTP.")
	}
	if domain.Expired(rec, timezone.Now()) {
		return nil, httperr.Auth("otp_expired", "OTP expired. Please request a new one.")
	}

	token, err := uc.tokens.Session(user)
	if err != nil {
		return nil, err
	}

	result := &VerifyOtpResult{User: user, Token: token}
	if forReset {
		if result.ResetToken, err = uc.tokens.PasswordReset(user.ID); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "otp_verified",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return result, nil
}
