// Package settings persists per-user client preferences.
package settings

import (
	"context"

	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

type Repository interface {
	// Upsert stores s, replacing any previous row for s.UserID.
	Upsert(ctx context.Context, s *models.Settings) error
	// Get returns common.ErrorNotFound when the user has no settings row.
	Get(ctx context.Context, userID string) (*models.Settings, error)
}
