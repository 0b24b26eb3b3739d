package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httperr"
)

// ForgotPassword issues an OTP to a known email. Verifying that code with
// the reset flag yields the token UpdatePassword demands.
type ForgotPassword struct {
	repo   domain.Repository
	issuer *OtpIssuer
}

func NewForgotPassword(repo domain.Repository, issuer *OtpIssuer) *ForgotPassword {
	return &ForgotPassword{repo: repo, issuer: issuer}
}

func (uc *ForgotPassword) Execute(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", httperr.NotFound("email_not_found", "Email not found.")
	}

	if err := uc.issuer.IssueOrReplace(ctx, user); err != nil {
		return "", err
	}

	return "OTP sent successfully!", nil
}

// UpdatePassword swaps a user's password. It only acts on a valid reset
// token, so possession of an email address alone cannot change anything.
type UpdatePassword struct {
	repo   domain.Repository
	tokens *TokenIssuer
	audit  *audit.Dispatcher
}

func NewUpdatePassword(
	repo domain.Repository,
	tokens *TokenIssuer,
	auditor *audit.Dispatcher,
) *UpdatePassword {
	return &UpdatePassword{repo: repo, tokens: tokens, audit: auditor}
}

func (uc *UpdatePassword) Execute(ctx context.Context, resetToken, newPassword string) (string, error) {
	if newPassword == "" {
		return "", httperr.Validation("password_required", "Email and new password required.")
	}

	userID, err := uc.tokens.ParseReset(resetToken)
	if err != nil {
		return "", err
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", httperr.NotFound("user_not_found", "User not found.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if err := uc.repo.UpdateUserPassword(ctx, user.ID, string(hash)); err != nil {
		return "", err
	}

	// Spent codes must not survive a successful reset.
	if err := uc.repo.DeleteOtpsForUser(ctx, user.ID); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "password_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return "Password updated successfully.", nil
}
