package user

import (
	"context"
	"fmt"

	userRepo "storefront/database/repository/user"
	"storefront/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages store accounts and their role flag.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req models.UserCreateRequest) (*models.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// CreateUser inserts a new account. When a password is supplied only its
// bcrypt hash is stored.
func (s *DefaultUserService) CreateUser(ctx context.Context, req models.UserCreateRequest) (*models.User, error) {
	usr := &models.User{
		ID:    uuid.New().String(),
		Email: req.Email,
		Name:  req.Name,
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		usr.PasswordHash = string(hashed)
	}

	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// PromoteToAdmin sets the admin role flag on the given user.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) error {
	return s.Repo.SetRole(ctx, id, "admin")
}

// IsAdmin reports whether the account with the given email carries the admin
// role. A missing account is simply not an admin.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return usr != nil && usr.Role == "admin", nil
}
