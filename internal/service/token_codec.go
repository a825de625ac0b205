package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"school-api/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenCodec signs and verifies HS256 access tokens carrying {sub, iat, exp}.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

func (c *TokenCodec) Sign(subject string) (string, model.SessionClaim, error) {
	now := c.now().UTC().Truncate(time.Second)
	claim := model.SessionClaim{
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   claim.Subject,
		IssuedAt:  jwt.NewNumericDate(claim.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(claim.ExpiresAt),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", model.SessionClaim{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, claim, nil
}

// Verify returns ErrInvalidToken for anything other than an untampered,
// unexpired HS256 token with a subject.
func (c *TokenCodec) Verify(tokenString string) (model.SessionClaim, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return model.SessionClaim{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return model.SessionClaim{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	claim := model.SessionClaim{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}

	return claim, nil
}

func (c *TokenCodec) keyFunc(*jwt.Token) (any, error) {
	return c.secret, nil
}
