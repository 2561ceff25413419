package auth

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/orderdash/internal/models"
	"time"
)

// SessionToken creates and verifies signed session tokens
type SessionToken struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSessionToken creates new SessionToken instance
func NewSessionToken(key []byte, ttl time.Duration) *SessionToken {
	return &SessionToken{
		key: key,
		ttl: ttl,
		now: time.Now,
	}
}

// CreateToken returns signed token carrying session id
func (st *SessionToken) CreateToken(sessionID string) (string, error) {
	now := st.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(st.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(st.key)
}

// VerifyToken checks token and returns session id and token expiry
func (st *SessionToken) VerifyToken(tokenString string) (string, time.Time, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return st.key, nil
	})
	if err != nil {
		return "", time.Time{}, errors.Join(models.ErrInvalidSessionToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return "", time.Time{}, models.ErrInvalidSessionToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(st.now()) {
		return "", time.Time{}, models.ErrInvalidSessionToken
	}
	return claims.ID, claims.ExpiresAt.Time, nil
}
