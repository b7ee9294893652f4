package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/smartfridge/internal/common"
)

// ErrInvalidSalt is returned by Hash when the salt is not common.SaltSize bytes.
var ErrInvalidSalt = errors.New("invalid salt length")

// digestEncoding is the fixed alphabet of stored digests: standard base64, no padding.
var digestEncoding = base64.RawStdEncoding

// PasswordVault salts and hashes passwords and verifies candidates against
// stored digests. A digest is base64(salt || sha256(password)); salt and hash
// are never stored separately.
type PasswordVault struct {
	random io.Reader
}

// NewPasswordVault returns a vault drawing salts from crypto/rand.
func NewPasswordVault() *PasswordVault {
	return &PasswordVault{random: rand.Reader}
}

// GenerateSalt returns common.SaltSize fresh random bytes.
func (v *PasswordVault) GenerateSalt() ([]byte, error) {
	salt := make([]byte, common.SaltSize)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}
	return salt, nil
}

// Hash computes the stored digest of password under salt.
func (v *PasswordVault) Hash(password string, salt []byte) (string, error) {
	if len(salt) != common.SaltSize {
		return "", ErrInvalidSalt
	}
	sum := sha256.Sum256([]byte(password))

	raw := make([]byte, 0, common.SaltSize+sha256.Size)
	raw = append(raw, salt...)
	raw = append(raw, sum[:]...)

	return digestEncoding.EncodeToString(raw), nil
}

// HashNew generates a fresh salt and hashes password with it.
func (v *PasswordVault) HashNew(password string) (string, error) {
	salt, err := v.GenerateSalt()
	if err != nil {
		return "", err
	}
	return v.Hash(password, salt)
}

// Verify reports whether password matches digest. Undecodable or short
// digests are treated as a mismatch.
func (v *PasswordVault) Verify(password, digest string) bool {
	raw, err := digestEncoding.DecodeString(digest)
	if err != nil || len(raw) < common.SaltSize {
		return false
	}

	candidate, err := v.Hash(password, raw[:common.SaltSize])
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
