package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
)

type SessionRepository interface {
	Upsert(ctx context.Context, session *models.Session) error
	GetValid(ctx context.Context, token string, now time.Time) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert stores a session row keyed by token, replacing the owning
// account and expiration if the token is already present.
func (r *sessionRepository) Upsert(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (session_id, user_id, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET user_id = excluded.user_id, expires_at = excluded.expires_at`
	_, err := r.db.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// GetValid returns the session for token only if it has not expired.
// Expired rows are left in place; the predicate alone makes them invalid.
func (r *sessionRepository) GetValid(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	session := models.Session{}
	var expiresAt int64
	query := `SELECT session_id, user_id, expires_at FROM sessions WHERE session_id = ? AND expires_at > ?`
	err := r.db.QueryRowContext(ctx, query, token, now.Unix()).Scan(&session.Token, &session.UserID, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting session: %w", err)
	}
	session.ExpiresAt = time.Unix(expiresAt, 0)
	return &session, nil
}

// Delete removes the session row for token. Deleting an absent token is
// not an error.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE session_id = ?`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired reaps rows whose expiration has passed and reports how
// many were removed. Nothing in the server schedules this; it exists for
// operators to call.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= ?`
	result, err := r.db.ExecContext(ctx, query, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}
	return rowsAffected, nil
}
