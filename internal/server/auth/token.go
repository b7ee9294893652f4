package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigning is returned by Sign when the token cannot be serialized.
var ErrSigning = errors.New("token signing failed")

var errIncompleteClaims = errors.New("incomplete claims")

// Claims is the identity and session data embedded in a signed token.
// It is a cached assertion; the session record in the store is authoritative.
type Claims struct {
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expire_date"`
	Username  string    `json:"username"`
}

// The registered-claim getters all report "absent": expiry is decided
// against the session record, not inside the codec.

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return "", nil }
func (c Claims) GetSubject() (string, error)                  { return c.UserID, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// Validate is called by the jwt parser after the signature check.
func (c Claims) Validate() error {
	if c.UserID == "" || c.SessionID == "" || c.ExpiresAt.IsZero() {
		return errIncompleteClaims
	}
	return nil
}

// TokenCodec signs and verifies HS256 tokens with a single process-wide secret.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec copies secret, so later changes to the caller's slice do not
// affect issued or verified tokens.
func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: append([]byte(nil), secret...)}
}

func (c *TokenCodec) Sign(claims Claims) (string, error) {
	return Sign(claims, c.secret)
}

func (c *TokenCodec) Verify(token string) (Claims, error) {
	return Verify(token, c.secret)
}

// Sign produces header.claims.signature, HMAC-SHA256 keyed by secret.
// The expiry is stored in UTC.
func Sign(claims Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrKeyInit
	}

	claims.ExpiresAt = claims.ExpiresAt.UTC()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return token, nil
}

// Verify checks the signature of token and returns its claims. Every
// structural, encoding or signature problem yields the same ErrInvalidToken.
func Verify(token string, secret []byte) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, ErrKeyInit
	}

	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
