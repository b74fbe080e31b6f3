package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a session row.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	const insertQuery = `
		INSERT INTO sessions (sessionid, userid, created_at, expires_at)
		VALUES (:sessionid, :userid, :created_at, :expires_at)
	`
	if _, err := r.db.NamedExecContext(ctx, insertQuery, s); err != nil {
		return fmt.Errorf("SessionRepository.Create: %w", apperr.FromStore(err))
	}
	return nil
}

// Get loads a session row by id.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	var s model.Session
	err := r.db.GetContext(ctx, &s, `SELECT * FROM sessions WHERE sessionid = $1`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("SessionRepository.Get: %w", apperr.FromStore(err))
	}
	return &s, nil
}

// Delete removes a session row. Deleting a row that is already gone is
// fine; logout is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE sessionid = $1`, sessionID); err != nil {
		return fmt.Errorf("SessionRepository.Delete: %w", err)
	}
	return nil
}

// PurgeExpired drops every session past its expiry.
func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("SessionRepository.PurgeExpired: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
