package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token invalid")

// IdentityClaims is the payload of the access_token cookie. The token
// carries no expiry; validity rests on the signature and on the user row
// still existing when the claims are resolved.
type IdentityClaims struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	jwt.RegisteredClaims
}

// EncodeIdentity signs identity claims with HS256.
func EncodeIdentity(secret []byte, id, name, email string, createdAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(secret)
}

// DecodeIdentity verifies the signature and returns the embedded claims.
func DecodeIdentity(secret []byte, tokenStr string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &IdentityClaims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return token.Claims.(*IdentityClaims), nil
}
