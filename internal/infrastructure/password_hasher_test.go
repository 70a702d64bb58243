package infrastructure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	stored, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)

	saltHex, keyHex, ok := strings.Cut(stored, ":")
	require.True(t, ok, "stored hash must be salt:key")
	assert.Len(t, saltHex, saltLength*2)
	assert.Len(t, keyHex, keyLength*2)

	assert.True(t, hasher.Verify("s3cret-password", stored))
	assert.False(t, hasher.Verify("s3cret-passworD", stored))
	assert.False(t, hasher.Verify("", stored))
}

func TestPasswordHasher_SaltsDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Different salts, therefore different hashes, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_VerifyFailsClosed(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "deadbeef"},
		{name: "empty salt", stored: ":deadbeef"},
		{name: "empty key", stored: "deadbeef:"},
		{name: "salt not hex", stored: "zzzz:deadbeef"},
		{name: "key not hex", stored: "deadbeef:zzzz"},
		{name: "truncated key", stored: "deadbeef:dead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("whatever", tt.stored))
		})
	}
}
