package jwt

import (
	"errors"
	"time"

	"bookstay/internal/pkg/clock"
	"bookstay/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type OperatorClaims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	jwt.RegisteredClaims
}

// Manager issues and validates operator access tokens. Mutating calendar
// operations require an attributable actor, which is always taken from the
// validated token rather than the request body.
type Manager struct {
	secret   []byte
	duration time.Duration
	clock    clock.Clock
}

func NewManager(cfg config.JWTConfig, clk clock.Clock) *Manager {
	return &Manager{
		secret:   []byte(cfg.Secret),
		duration: cfg.Duration,
		clock:    clk,
	}
}

func (m *Manager) Issue(operatorID uuid.UUID) (string, error) {
	now := m.clock.Now()
	claims := OperatorClaims{
		OperatorID: operatorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid || claims.OperatorID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.OperatorID, nil
}
