// Package sessions provides persistence for server-side session records,
// the authoritative source for whether a signed token is still honoured.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

// Repository is the session store consumed by login, validation and logout.
// Each method is a single-row, single-statement operation.
type Repository interface {
	// Create inserts a new session row.
	Create(ctx context.Context, session *models.Session) error

	// Find returns the session with the given id, or common.ErrorNotFound.
	Find(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateExpiry sets expires_at for the session. Updating a missing
	// session returns common.ErrorNotFound.
	UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error
}
