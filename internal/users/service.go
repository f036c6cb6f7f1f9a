package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-manager/internal/credentials"
)

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers missing, malformed, expired, and dangling
	// tokens uniformly.
	ErrUnauthorized = errors.New("unauthorized")
)

// Service implements registration, login, and token-to-user resolution.
type Service struct {
	Repo      Repo
	Passwords *credentials.PasswordService
	Tokens    *credentials.TokenService
	TokenTTL  time.Duration

	now func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, passwords *credentials.PasswordService, tokens *credentials.TokenService, tokenTTL time.Duration) *Service {
	return &Service{
		Repo:      repo,
		Passwords: passwords,
		Tokens:    tokens,
		TokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Register hashes the password and persists a new user. The email is stored
// as given; matching stays case-sensitive.
func (s *Service) Register(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, errors.New("email and password are required")
	}
	digest, err := s.Passwords.Hash(password)
	if err != nil {
		return User{}, err
	}
	user := User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: digest,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token bound to the
// user's email.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.Passwords.Verify(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(user.Email, s.TokenTTL)
}

// CurrentUser resolves a token to the user it was issued for. A token whose
// subject no longer exists is rejected even though accounts are not deleted
// through this service.
func (s *Service) CurrentUser(ctx context.Context, token string) (User, error) {
	subject, err := s.Tokens.Resolve(token)
	if err != nil {
		return User{}, ErrUnauthorized
	}
	user, err := s.Repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, err
	}
	return user, nil
}

// Authenticate adapts CurrentUser to the auth middleware contract.
func (s *Service) Authenticate(ctx context.Context, token string) (string, string, error) {
	user, err := s.CurrentUser(ctx, token)
	if err != nil {
		return "", "", err
	}
	return user.ID, user.Email, nil
}

// GetByID returns a user by ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
