package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 12 * time.Hour

// Sessions issues and checks the operator tokens handed out by the login front end.
// The token carries the operator id and role; the core trusts them as given.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: defaultTokenTTL}
}

func (s *Sessions) Issue(op model.Operator) (string, error) {
	if op.ID == "" {
		return "", fmt.Errorf("%w: operator id is required", ErrInvalidInput)
	}
	if op.Role != model.RoleAdmin && op.Role != model.RoleStaff {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, op.Role)
	}

	claims := jwt.MapClaims{
		"id":   op.ID,
		"role": op.Role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Sessions) Parse(tokenString string) (model.Operator, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return model.Operator{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return model.Operator{}, ErrInvalidToken
	}
	return model.Operator{ID: id, Role: role}, nil
}
