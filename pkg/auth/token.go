package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token is invalid")

// TokenIssuer mints the demo session token. The claims carry no timestamps,
// so the signed token is one fixed opaque string per secret for the lifetime
// of the process. The server hands it out on login and never validates it
// again; it exists so clients hold a bearer credential of the usual shape.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (i *TokenIssuer) Issue() (string, error) {
	claims := jwt.MapClaims{
		"iss":  "medcare-api",
		"sub":  "demo-session",
		"demo": true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing demo token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature. No endpoint calls this; it is here so
// operators and tests can confirm a captured token came from this service.
func (i *TokenIssuer) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
