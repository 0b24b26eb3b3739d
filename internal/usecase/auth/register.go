package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/princessangelsalon/salon-api/internal/audit"
	domain "github.com/princessangelsalon/salon-api/internal/domain/auth"
	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register creates a customer account. The role is fixed; staff accounts
// only come from the superadmin surface.
type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(repo domain.Repository, auditor *audit.Dispatcher) *Register {
	return &Register{repo: repo, audit: auditor}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.Business("email_exists",
				"Registration failed. Email already exists.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
