package auth

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndUniqueness(t *testing.T) {
	v := NewPasswordVault()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		salt, err := v.GenerateSalt()
		require.NoError(t, err)
		require.Len(t, salt, 16)

		_, dup := seen[string(salt)]
		require.False(t, dup, "salt repeated after %d draws", i)
		seen[string(salt)] = struct{}{}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy gone") }

func TestGenerateSalt_ReaderError(t *testing.T) {
	v := &PasswordVault{random: failingReader{}}

	_, err := v.GenerateSalt()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy gone")
}

func TestHash_Format(t *testing.T) {
	v := NewPasswordVault()
	salt := bytes.Repeat([]byte{0xAB}, 16)

	digest, err := v.Hash("pw123", salt)
	require.NoError(t, err)

	assert.False(t, strings.HasSuffix(digest, "="), "digest must be unpadded")

	raw, err := base64.RawStdEncoding.DecodeString(digest)
	require.NoError(t, err)
	require.Len(t, raw, 48)

	sum := sha256.Sum256([]byte("pw123"))
	assert.Equal(t, salt, raw[:16])
	assert.Equal(t, sum[:], raw[16:])
}

func TestHash_Deterministic(t *testing.T) {
	v := NewPasswordVault()
	salt := bytes.Repeat([]byte{1}, 16)

	a, err := v.Hash("secret", salt)
	require.NoError(t, err)
	b, err := v.Hash("secret", salt)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHash_RejectsBadSalt(t *testing.T) {
	v := NewPasswordVault()

	for _, n := range []int{0, 15, 17, 32} {
		_, err := v.Hash("pw", make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidSalt, "salt of %d bytes", n)
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	v := NewPasswordVault()

	passwords := []string{"pw123", "", "correct horse battery staple", "пароль", strings.Repeat("x", 1024)}
	for _, p := range passwords {
		salt, err := v.GenerateSalt()
		require.NoError(t, err)

		digest, err := v.Hash(p, salt)
		require.NoError(t, err)

		assert.True(t, v.Verify(p, digest), "password %q must verify", p)
		assert.False(t, v.Verify(p+"!", digest), "altered password %q must not verify", p)
	}
}

func TestVerify_SamePasswordDifferentSalts(t *testing.T) {
	v := NewPasswordVault()

	d1, err := v.HashNew("pw123")
	require.NoError(t, err)
	d2, err := v.HashNew("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, v.Verify("pw123", d1))
	assert.True(t, v.Verify("pw123", d2))
}

func TestVerify_FailsClosedOnMalformedDigest(t *testing.T) {
	v := NewPasswordVault()

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "not base64", digest: "!!!not-base64!!!"},
		{name: "padded", digest: base64.StdEncoding.EncodeToString(make([]byte, 47))},
		{name: "shorter than salt", digest: base64.RawStdEncoding.EncodeToString(make([]byte, 15))},
		{name: "salt only", digest: base64.RawStdEncoding.EncodeToString(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, v.Verify("pw123", tt.digest))
		})
	}
}
