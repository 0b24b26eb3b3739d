package auth

import (
	"context"

	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/logger"
	"github.com/princessangelsalon/salon-api/internal/models"
	"github.com/princessangelsalon/salon-api/internal/notify"
	"github.com/princessangelsalon/salon-api/internal/timezone"
)

// OtpIssuer writes a user's single OTP slot and mails the code. Every flow
// that hands out a code goes through IssueOrReplace, so at most one live
// code exists per user.
type OtpIssuer struct {
	repo   domain.Repository
	sender notify.OtpSender
}

func NewOtpIssuer(repo domain.Repository, sender notify.OtpSender) *OtpIssuer {
	return &OtpIssuer{repo: repo, sender: sender}
}

// IssueOrReplace generates a fresh code and upserts it for the user. Mail
// delivery runs in the background; a delivery failure is logged but does
// not undo the issuance.
func (i *OtpIssuer) IssueOrReplace(ctx context.Context, user *models.User) error {
	code, err := domain.GenerateCode()
	if err != nil {
		return err
	}

	if err := i.repo.UpsertOtp(ctx, user.ID, code, timezone.Now()); err != nil {
		return err
	}

	go func(email, code string) {
		if err := i.sender.SendOtp(email, code); err != nil {
			logger.Error().Err(err).Str("email", email).Msg("otp email delivery failed")
		}
	}(user.Email, code)

	return nil
}
