package service

import (
	"errors"
	"testing"

	"Folks_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_IssuesDecodableToken(t *testing.T) {
	db := newTestDB(t)
	secret := []byte("test-secret")
	svc := NewUserService(db, secret, pkg.SMTPConfig{})

	user, token, err := svc.Signup("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret1", user.Password, "password must be stored hashed")

	claims, err := pkg.DecodeIdentity(secret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.True(t, claims.CreatedAt.Equal(user.CreatedAt))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, []byte("s"), pkg.SMTPConfig{})

	_, _, err := svc.Signup("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Signup("Other Ann", "ann@x.com", "secret2")
	var apiErr *pkg.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, pkg.CodeResourceExists, apiErr.Code)
	assert.Equal(t, "email", apiErr.Param)
}

func TestSignin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, []byte("s"), pkg.SMTPConfig{})

	_, _, err := svc.Signup("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Signin("ann@x.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Signin("ann@x.com", "wrong")
		var apiErr *pkg.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, pkg.CodeInvalidCredentials, apiErr.Code)
		assert.Equal(t, "password", apiErr.Param)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Signin("nobody@x.com", "secret1")
		var apiErr *pkg.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, pkg.CodeInvalidCredentials, apiErr.Code)
		assert.Equal(t, "email", apiErr.Param)
	})
}
