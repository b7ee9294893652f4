package auth

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/smartfridge/internal/common"
)

// FailureKind classifies why a request could not be authenticated.
type FailureKind int

const (
	FailureInternalStore FailureKind = iota + 1
	FailureNoSession
	FailureUserIDMismatch
	FailureExpireDateMismatch
	FailureExpired
	FailureInvalidToken
	FailureKeyInit
)

var failureNames = map[FailureKind]string{
	FailureInternalStore:      "internal_store_error",
	FailureNoSession:          "no_session_with_id",
	FailureUserIDMismatch:     "user_id_mismatch",
	FailureExpireDateMismatch: "expire_date_mismatch",
	FailureExpired:            "expired",
	FailureInvalidToken:       "invalid_token",
	FailureKeyInit:            "key_init_error",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds lists every failure kind, in declaration order.
func Kinds() []FailureKind {
	return []FailureKind{
		FailureInternalStore,
		FailureNoSession,
		FailureUserIDMismatch,
		FailureExpireDateMismatch,
		FailureExpired,
		FailureInvalidToken,
		FailureKeyInit,
	}
}

// Failure is an authentication outcome other than success. Err carries
// internal detail for logs and must never reach a response body.
type Failure struct {
	Kind FailureKind
	Err  error
}

// NewFailure wraps err under kind.
func NewFailure(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Kind.String() + ": " + f.Err.Error()
	}
	return f.Kind.String()
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches any *Failure of the same kind, so errors.Is(err, ErrExpired)
// holds regardless of the wrapped cause.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Kind == f.Kind
}

// Sentinels for errors.Is.
var (
	ErrInternalStore      = &Failure{Kind: FailureInternalStore}
	ErrNoSession          = &Failure{Kind: FailureNoSession}
	ErrUserIDMismatch     = &Failure{Kind: FailureUserIDMismatch}
	ErrExpireDateMismatch = &Failure{Kind: FailureExpireDateMismatch}
	ErrExpired            = &Failure{Kind: FailureExpired}
	ErrInvalidToken       = &Failure{Kind: FailureInvalidToken, Err: common.ErrInvalidToken}
	ErrKeyInit            = &Failure{Kind: FailureKeyInit}
)

// KindOf extracts the failure kind from err, if err is (or wraps) a *Failure.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}

// failurePolicy is the single status table shared by every protected route.
var failurePolicy = map[FailureKind]struct {
	status  int
	message string
}{
	FailureInternalStore:      {http.StatusInternalServerError, "internal error"},
	FailureNoSession:          {http.StatusBadRequest, "invalid session"},
	FailureUserIDMismatch:     {http.StatusBadRequest, "invalid session"},
	FailureExpireDateMismatch: {http.StatusBadRequest, "invalid session"},
	FailureExpired:            {http.StatusUnauthorized, "session expired"},
	FailureInvalidToken:       {http.StatusBadRequest, "invalid token"},
	FailureKeyInit:            {http.StatusBadRequest, "invalid token"},
}

// StatusFor returns the HTTP status for kind. Unknown kinds are treated as
// internal errors.
func StatusFor(kind FailureKind) int {
	if p, ok := failurePolicy[kind]; ok {
		return p.status
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the generic response text for kind.
func PublicMessage(kind FailureKind) string {
	if p, ok := failurePolicy[kind]; ok {
		return p.message
	}
	return "internal error"
}
