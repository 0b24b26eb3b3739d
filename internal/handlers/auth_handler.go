package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httpresp"
	usecase "github.com/princessangelsalon/salon-api/internal/usecase/auth"
	"github.com/princessangelsalon/salon-api/internal/validators"
)

type AuthHandler struct {
	register *usecase.Register
	login    *usecase.Login
	verify   *usecase.VerifyOtp
	resend   *usecase.ResendOtp
	forgot   *usecase.ForgotPassword
	update   *usecase.UpdatePassword
	repo     domain.Repository
}

func NewAuthHandler(
	register *usecase.Register,
	login *usecase.Login,
	verify *usecase.VerifyOtp,
	resend *usecase.ResendOtp,
	forgot *usecase.ForgotPassword,
	update *usecase.UpdatePassword,
	repo domain.Repository,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		verify:   verify,
		resend:   resend,
		forgot:   forgot,
		update:   update,
		repo:     repo,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required"`
	Otp   string `json:"otp" binding:"required"`

	// Reset asks for a password-reset grant alongside the session.
	Reset bool `json:"reset"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type UpdatePasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Registration failed. Server error.")
		return
	}

	_, err := h.register.Execute(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    validators.CleanPhone(req.Phone),
		Password: req.Password,
	})
	if err != nil {
		httpresp.FailErr(c, err, "Registration failed. Server error.")
		return
	}

	httpresp.OK(c, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Invalid credentials")
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpresp.FailErr(c, err, "Login failed")
		return
	}

	if res.RequireOTP {
		httpresp.OK(c, gin.H{
			"requireOTP": true,
			"message":    res.Message,
		})
		return
	}

	httpresp.OK(c, gin.H{
		"requireOTP": false,
		"user":       res.User,
		"token":      res.Token,
		"message":    res.Message,
	})
}

func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Invalid OTP.")
		return
	}

	res, err := h.verify.Execute(c.Request.Context(), req.Email, req.Otp, req.Reset)
	if err != nil {
		httpresp.FailErr(c, err, "Invalid OTP.")
		return
	}

	body := gin.H{
		"user":  res.User,
		"token": res.Token,
	}
	if res.ResetToken != "" {
		body["resetToken"] = res.ResetToken
	}
	httpresp.OK(c, body)
}

func (h *AuthHandler) ResendOtp(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "User not found.")
		return
	}

	msg, err := h.resend.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httpresp.FailErr(c, err, "Failed to resend OTP.")
		return
	}

	httpresp.OK(c, gin.H{"message": msg})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Email not found.")
		return
	}

	msg, err := h.forgot.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httpresp.FailErr(c, err, "Failed to send OTP.")
		return
	}

	httpresp.OK(c, gin.H{
		"requireOTP": true,
		"message":    msg,
	})
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, "Email and new password required.")
		return
	}

	msg, err := h.update.Execute(c.Request.Context(), req.ResetToken, req.NewPassword)
	if err != nil {
		httpresp.FailErr(c, err, "Failed to update password.")
		return
	}

	httpresp.OK(c, gin.H{"message": msg})
}

// SecurityStatus reports whether two-factor login is on. The body carries
// only the flag, no success envelope, and the flag marshals as 0 or 1 so
// clients comparing against integers keep working.
func (h *AuthHandler) SecurityStatus(c *gin.Context) {
	enabled, err := h.repo.TwoFactorEnabled(c.Request.Context())
	if err != nil {
		httpresp.Internal(c, "Failed to fetch security status.")
		return
	}

	flag := 0
	if enabled {
		flag = 1
	}
	c.JSON(http.StatusOK, gin.H{"enabled": flag})
}
