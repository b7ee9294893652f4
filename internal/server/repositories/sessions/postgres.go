package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/dbx"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (session_id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Find looks a session up by id. Ids that are not UUIDs cannot exist in the
// table and are reported as not found without a round trip.
func (r *PostgresRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, common.ErrorNotFound
	}

	query := `
		SELECT session_id, user_id, expires_at, created_at
		FROM sessions
		WHERE session_id = $1
	`
	s := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return common.ErrorNotFound
	}

	query := `
		UPDATE sessions SET expires_at = $2
		WHERE session_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, sessionID, expiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
