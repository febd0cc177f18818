package server

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
)

// UserService provides business logic for account registration and login.
type UserService struct {
	users          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(users UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		users:          users,
		passwordConfig: passwordConfig,
	}
}

// toUserView projects a stored user onto the wire shape, excluding the hash.
func toUserView(u *db.User) UserView {
	return UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// Register creates a new account with password authentication.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (UserView, error) {
	exists, err := s.users.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return UserView{}, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.users.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return UserView{}, fmt.Errorf("created user not found: %s", userID)
	}

	return toUserView(user), nil
}

// Login authenticates an account. User-not-found and wrong-password collapse
// into the same error so responses don't leak which emails exist.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (UserView, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return UserView{}, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return UserView{}, &ErrInvalidCredentials{}
	}

	return toUserView(user), nil
}
