package auth

import (
	"context"
	"time"

	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/logger"
)

// Cooldown gates repeated requests per key. Allow returns how long the key
// still has to wait; zero means the request may proceed and starts a new
// window.
type Cooldown interface {
	Allow(ctx context.Context, key string) (time.Duration, error)
}

// ResendOtp reissues a user's code. The old code dies with the upsert, so
// the record in the store always matches the last mail sent.
type ResendOtp struct {
	repo     domain.Repository
	issuer   *OtpIssuer
	cooldown Cooldown
}

func NewResendOtp(repo domain.Repository, issuer *OtpIssuer, cooldown Cooldown) *ResendOtp {
	return &ResendOtp{repo: repo, issuer: issuer, cooldown: cooldown}
}

func (uc *ResendOtp) Execute(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", httperr.NotFound("user_not_found", "User not found.")
	}

	if uc.cooldown != nil {
		wait, err := uc.cooldown.Allow(ctx, "otp:resend:"+email)
		switch {
		case err != nil:
			// A broken rate limiter must not lock users out of login.
			logger.Warn().Err(err).Msg("resend cooldown unavailable, allowing")
		case wait > 0:
			return "", httperr.Business("resend_cooldown",
				"Please wait a moment before requesting another OTP.")
		}
	}

	if err := uc.issuer.IssueOrReplace(ctx, user); err != nil {
		return "", err
	}

	return "OTP resent successfully.", nil
}
