// Package users declares the server-side repository contract for
// registered credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

// Repository stores credentials. Credentials are never updated or deleted.
type Repository interface {
	// Create inserts user and fills in its ID. A taken username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound for an unknown username.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
