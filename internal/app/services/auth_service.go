package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/app/repositories"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and creates a server-side session. The
	// returned session has its User relation populated.
	Login(ctx context.Context, username, password string) (*models.Session, error)
	// Logout clears the session unconditionally; unknown tokens succeed.
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to the authenticated context for the
	// request, or fails with ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (auth.Session, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo    repositories.IUserRepository
	sessionRepo repositories.ISessionRepository
	verifier    auth.CredentialVerifier
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repositories.IUserRepository,
	sessionRepo repositories.ISessionRepository,
	verifier auth.CredentialVerifier,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		verifier:    verifier,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login authenticates a user by exact username match and password
// verification. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !s.verifier.Verify(user.Password, password) {
		s.logger.Warn().Str("username", username).Msg("Password mismatch on login")
		return nil, apperrors.ErrInvalidCredentials
	}

	// Login is a convenient point to shed expired rows
	if err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to purge expired sessions")
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		User:      user,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	s.logger.Info().
		Str("username", user.Username).
		Str("role", user.Role.String()).
		Msg("User logged in")

	return session, nil
}

// Logout deletes the session row. Missing or already-deleted tokens are
// treated as success.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// Resolve validates the token against the session store
func (s *authServiceImpl) Resolve(ctx context.Context, token string) (auth.Session, error) {
	if token == "" {
		return auth.Session{}, apperrors.ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return auth.Session{}, apperrors.ErrUnauthenticated
		}
		return auth.Session{}, fmt.Errorf("error resolving session: %w", err)
	}

	return auth.Session{
		UserID:   session.User.ID,
		Username: session.User.Username,
		Role:     session.User.Role,
	}, nil
}
