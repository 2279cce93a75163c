package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/logger"
)

// ISessionRepository defines the session data access contract. Sessions are
// server-side rows; the browser cookie only carries the opaque token.
type ISessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// SessionRepository handles session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new session row
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("token", "user_id", "expires_at").
		Values(session.Token, session.UserID, session.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", session.UserID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetByToken retrieves a live session with its user populated. Expired
// sessions are treated as absent.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	sql, args, err := r.sb.Select("s.token", "s.user_id", "s.created_at", "s.expires_at", "u.id", "u.username", "u.role").
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.token": token}).
		Where(squirrel.Expr("s.expires_at > now()")).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session := &models.Session{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.User.ID,
		&session.User.Username,
		&session.User.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session by token: %w", err)
	}

	return session, nil
}

// Delete removes a session row. Deleting an absent token is not an error, so
// logout stays idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// DeleteExpired purges sessions past their expiry
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Expr("expires_at <= now()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete expired sessions query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete expired sessions query")
		return fmt.Errorf("error deleting expired sessions: %w", err)
	}

	if cmdTag.RowsAffected() > 0 {
		logger.Debug().Int64("count", cmdTag.RowsAffected()).Msg("Purged expired sessions")
	}

	return nil
}
