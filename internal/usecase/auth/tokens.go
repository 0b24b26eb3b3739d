package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

const (
	sessionTTL = 24 * time.Hour

	// Reset tokens only bridge verify-otp to update-password, so they
	// stay short-lived.
	resetTTL     = 10 * time.Minute
	resetPurpose = "password_reset"
)

// TokenIssuer mints and checks the HMAC-signed JWTs used by the auth flows.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (t *TokenIssuer) Session(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(sessionTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// PasswordReset mints the token verify-otp hands out for the
// update-password step.
func (t *TokenIssuer) PasswordReset(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": resetPurpose,
		"exp":     now.Add(resetTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ParseReset validates a password-reset token and returns its subject.
// Any defect, wrong purpose included, reads as an invalid token.
func (t *TokenIssuer) ParseReset(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, httperr.Auth("invalid_reset_token", "Invalid or expired reset token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, httperr.Auth("invalid_reset_token", "Invalid or expired reset token.")
	}

	purpose, _ := claims["purpose"].(string)
	sub, okSub := claims["sub"].(float64)
	if purpose != resetPurpose || !okSub {
		return 0, httperr.Auth("invalid_reset_token", "Invalid or expired reset token.")
	}

	return uint(sub), nil
}
