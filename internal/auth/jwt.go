package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed session lifetime. There is no refresh mechanism.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a session token binding the user's email.
func GenerateToken(secret []byte, email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseToken verifies a token and returns the email claim it carries.
func ParseToken(secret []byte, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
