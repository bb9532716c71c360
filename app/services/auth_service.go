package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/pkg/auth"
)

// UserStore is the slice of the user repository the auth flow needs.
// Satisfied by *repositories.UserRepository; tests supply in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

// AuthService implements signup, login, and profile lookup.
type AuthService struct {
	users  UserStore
	tokens *auth.TokenService
}

func NewAuthService(users UserStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new account with the default "user" role, hashes the
// password, and returns a fresh session token alongside the stored user.
// A duplicate email (any casing or surrounding whitespace) yields
// ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", models.User{}, fmt.Errorf("signup: hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    models.NormalizeEmail(email),
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", models.User{}, ErrEmailTaken
		}
		return "", models.User{}, fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Role, user.Email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("signup: issue token: %w", err)
	}

	return token, user.Public(), nil
}

// Login verifies the credentials and issues a session token.
// Unknown email and wrong password are distinct sentinels so the handler
// can keep its distinct response messages; both map to 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", models.User{}, ErrUserNotFound
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("login: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Role, user.Email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("login: issue token: %w", err)
	}

	return token, user.Public(), nil
}

// Profile returns the account behind a verified token's subject id.
func (s *AuthService) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("profile: %w", err)
	}
	return user.Public(), nil
}
