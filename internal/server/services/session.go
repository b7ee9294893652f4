package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/sessions"
	"github.com/thejerf/abtime"
)

// SessionValidator decides whether verified token claims still correspond to
// a live server-side session. The store is the source of truth: a token is
// only honoured while its session row agrees with it and has not lapsed.
type SessionValidator struct {
	sessions  sessions.Repository
	clock     abtime.AbstractTime
	tolerance time.Duration
	backdate  time.Duration
}

// NewSessionValidator builds a validator. tolerance is the largest accepted
// distance between the token's expire_date and the stored expiry (inclusive);
// backdate is how far into the past Invalidate moves the stored expiry.
func NewSessionValidator(repo sessions.Repository, clock abtime.AbstractTime, tolerance, backdate time.Duration) *SessionValidator {
	return &SessionValidator{
		sessions:  repo,
		clock:     clock,
		tolerance: tolerance,
		backdate:  backdate,
	}
}

// Validate runs the checks in a fixed order and returns the first failure:
// ErrNoSession, ErrUserIDMismatch, ErrExpireDateMismatch, ErrExpired.
// A store error is reported as FailureInternalStore, never as a verdict.
//
// A session that was cut short by logout has a stored expiry earlier than the
// token's; once it has lapsed that gap is reported as ErrExpired rather than
// as a mismatch. This is the only case in which the tolerance check is skipped.
func (v *SessionValidator) Validate(ctx context.Context, claims auth.Claims) error {
	rec, err := v.find(ctx, claims.SessionID)
	if err != nil {
		return err
	}

	if rec.UserID != claims.UserID {
		return auth.ErrUserIDMismatch
	}

	now := v.clock.Now()
	lapsed := rec.IsExpiredAt(now)
	cutShort := lapsed && rec.ExpiresAt.Before(claims.ExpiresAt)

	if !cutShort && absDuration(claims.ExpiresAt.Sub(rec.ExpiresAt)) > v.tolerance {
		return auth.ErrExpireDateMismatch
	}

	if lapsed {
		return auth.ErrExpired
	}

	return nil
}

// Invalidate ends the session by moving its expiry into the past. Ending an
// already lapsed session leaves it unchanged.
func (v *SessionValidator) Invalidate(ctx context.Context, sessionID string) error {
	rec, err := v.find(ctx, sessionID)
	if err != nil {
		return err
	}

	now := v.clock.Now()
	if rec.IsExpiredAt(now) {
		return nil
	}

	if err := v.sessions.UpdateExpiry(ctx, sessionID, now.Add(-v.backdate)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return auth.ErrNoSession
		}
		return auth.NewFailure(auth.FailureInternalStore, err)
	}
	return nil
}

func (v *SessionValidator) find(ctx context.Context, sessionID string) (*models.Session, error) {
	rec, err := v.sessions.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, auth.ErrNoSession
		}
		return nil, auth.NewFailure(auth.FailureInternalStore, err)
	}
	return rec, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
