package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princessangelsalon/salon-api/internal/models"
)

// stubAuthRepo serves only the two-factor flag; the other methods are
// never reached by the handlers under test.
type stubAuthRepo struct {
	twoFactor bool
}

func (s *stubAuthRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}

func (s *stubAuthRepo) GetUserByID(context.Context, uint) (*models.User, error) {
	return nil, nil
}

func (s *stubAuthRepo) CreateUser(context.Context, *models.User) error { return nil }

func (s *stubAuthRepo) UpdateUserPassword(context.Context, uint, string) error { return nil }

func (s *stubAuthRepo) TwoFactorEnabled(context.Context) (bool, error) {
	return s.twoFactor, nil
}

func (s *stubAuthRepo) UpsertOtp(context.Context, uint, string, time.Time) error { return nil }

func (s *stubAuthRepo) GetOtpByCode(context.Context, uint, string) (*models.OtpRecord, error) {
	return nil, nil
}

func (s *stubAuthRepo) DeleteOtpsForUser(context.Context, uint) error { return nil }

// Clients compare the flag against the integers 0 and 1, so the body must
// carry a number, not a boolean.
func TestSecurityStatusMarshalsFlagAsInteger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		enabled bool
		body    string
	}{
		{"enabled", true, `{"enabled":1}`},
		{"disabled", false, `{"enabled":0}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &AuthHandler{repo: &stubAuthRepo{twoFactor: tc.enabled}}
			r := gin.New()
			r.GET("/api/security-status", h.SecurityStatus)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/security-status", nil)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
