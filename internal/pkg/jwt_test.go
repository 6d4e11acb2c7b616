package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeIdentity_RoundTrip(t *testing.T) {
	secret := []byte("super-secret")
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tok, err := EncodeIdentity(secret, "42", "Ann", "ann@x.com", createdAt)
	require.NoError(t, err)

	claims, err := DecodeIdentity(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.ID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.True(t, claims.CreatedAt.Equal(createdAt))
	require.NotNil(t, claims.IssuedAt)
}

func TestDecodeIdentity_WrongSecret(t *testing.T) {
	tok, err := EncodeIdentity([]byte("right-secret"), "1", "Bo", "bo@x.com", time.Now())
	require.NoError(t, err)

	_, err = DecodeIdentity([]byte("wrong-secret"), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeIdentity_Malformed(t *testing.T) {
	_, err := DecodeIdentity([]byte("k"), "not.a.jwt")
	assert.Error(t, err)
}
