package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/repomanager"
)

// SettingsService reads and stores per-user client preferences.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Get returns the user's settings, or the defaults if none were stored.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.Settings, error) {
	st, err := s.repomanager.Settings(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &models.Settings{UserID: userID, Theme: models.DefaultTheme}, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return st, nil
}

// Save replaces the user's settings.
func (s *SettingsService) Save(ctx context.Context, st *models.Settings) error {
	if err := s.repomanager.Settings(s.db).Upsert(ctx, st); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return nil
}
