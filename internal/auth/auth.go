// Package auth contains session tokens and password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned when token is malformed, expired or signed with another key.
var ErrInvalidToken = errors.New("invalid token")

// Tokens issues and parses session tokens.
type Tokens interface {
	Issue(accountID int64) (string, error)
	Parse(token string) (int64, error)
}

type claims struct {
	AccountID int64 `json:"account_id"`
	jwt.RegisteredClaims
}

// JWT is HS256 implementation of Tokens.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT ...
func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue ...
func (j *JWT) Issue(accountID int64) (string, error) {
	now := j.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	s, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return s, nil
}

// Parse returns account id the token was issued for.
func (j *JWT) Parse(token string) (int64, error) {
	var c claims

	t, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if !t.Valid || c.AccountID == 0 {
		return 0, ErrInvalidToken
	}

	return c.AccountID, nil
}

// HashPassword ...
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(b), nil
}

// CheckPassword reports whether password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
