// Package services contains server-side business logic. This file implements
// UserService: registration, login, logout and token authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/dbx"
	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/dmitrijs2005/smartfridge/internal/server/config"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/thejerf/abtime"
)

// UserService provides authentication-related operations:
//   - Register: create users with a salted digest and default settings
//   - Login: verify credentials, open a session and sign a token for it
//   - Authenticate: verify a token and check it against its session
//   - Logout: end the session a token refers to
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	vault           *auth.PasswordVault
	codec           *auth.TokenCodec
	validator       *SessionValidator
	clock           abtime.AbstractTime
	sessionValidity time.Duration

	// decoyDigest is checked against when the username is unknown, so both
	// failure paths of Login do the same hashing work.
	decoyDigest string
}

// NewUserService wires a UserService. The session validator shares the
// pool-bound sessions repository and the same clock.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, codec *auth.TokenCodec, clock abtime.AbstractTime, cfg *config.Config) (*UserService, error) {
	vault := auth.NewPasswordVault()
	decoyPassword, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, err
	}
	decoy, err := vault.HashNew(decoyPassword)
	if err != nil {
		return nil, err
	}

	return &UserService{
		db:              db,
		repomanager:     m,
		vault:           vault,
		codec:           codec,
		validator:       NewSessionValidator(m.Sessions(db), clock, cfg.ExpiryTolerance, cfg.LogoutBackdate),
		clock:           clock,
		sessionValidity: cfg.SessionValidityDuration,
		decoyDigest:     decoy,
	}, nil
}

// Register creates the user and its default settings in one transaction.
// A taken username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	digest, err := s.vault.HashNew(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	user := &models.User{UserName: username, PasswordDigest: digest}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		return s.repomanager.Settings(tx).Upsert(ctx, &models.Settings{UserID: created.ID, Theme: models.DefaultTheme})
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns a signed token for a new session.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.vault.Verify(password, s.decoyDigest)
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !s.vault.Verify(password, user.PasswordDigest) {
		return "", common.ErrorUnauthorized
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.clock.Now().Add(s.sessionValidity).UTC(),
	}

	token, err := s.codec.Sign(auth.Claims{
		UserID:    user.ID,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Username:  user.UserName,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, session); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// Authenticate verifies token and validates its claims against the session
// store. Failures are *auth.Failure values.
func (s *UserService) Authenticate(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return auth.Claims{}, err
	}
	if err := s.validator.Validate(ctx, claims); err != nil {
		return auth.Claims{}, err
	}
	return claims, nil
}

// Logout ends the session behind already authenticated claims.
func (s *UserService) Logout(ctx context.Context, claims auth.Claims) error {
	return s.validator.Invalidate(ctx, claims.SessionID)
}
