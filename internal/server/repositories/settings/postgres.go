package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/dbx"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO user_settings (user_id, theme)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme
	`
	if _, err := r.db.ExecContext(ctx, query, s.UserID, string(s.Theme)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query := `
		SELECT theme FROM user_settings
		WHERE user_id = $1
	`
	var theme string
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&theme); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	t, err := models.ParseTheme(theme)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &models.Settings{UserID: userID, Theme: t}, nil
}
