package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emilythestrangee/qa-forum/backend/internal/auth"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

// AuthService registers users and exchanges credentials for bearer tokens.
type AuthService struct {
	users   store.UserStore
	tokens  *auth.Tokens
	profile profile.Profile
	now     Clock
}

func NewAuthService(users store.UserStore, tokens *auth.Tokens, p profile.Profile) *AuthService {
	return &AuthService{users: users, tokens: tokens, profile: p, now: time.Now}
}

// Register creates the user and returns a token for it. Username and email
// are compared exactly; either one already taken yields ErrConflict.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	username, email := req.Username, req.Email
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || req.Password == "" {
		return "", fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: username or email already registered", ErrConflict)
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password is too long", ErrInvalidInput)
	}
	if err != nil {
		return "", err
	}

	fields := req.Profile()
	user := &models.User{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      email,
		Password:   hash,
		FullName:   fields.FullName,
		Bio:        fields.Bio,
		Reputation: 0,
		CreatedAt:  s.now().UTC(),
	}
	if s.profile.ExtendedUserFields {
		user.OriginCountry = fields.OriginCountry
		user.CurrentLocation = fields.CurrentLocation
		user.ImmigrationStatus = fields.ImmigrationStatus
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrDuplicate) {
			return "", fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return "", err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return s.tokens.Issue(user.Username)
}

// Login returns a fresh token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}
	return s.tokens.Issue(user.Username)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown subject", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
