package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session token payload. Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed session token for a username with the
// given lifetime.
func GenerateToken(secret, issuer, username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// jti makes every minted token distinct even within the
			// one-second timestamp resolution
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and structure of a token and
// returns its claims. Expiry is not checked here; it stays an explicit
// policy decision of the caller (see IsExpired).
func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// ExtractUsername returns the subject of a verified token.
func ExtractUsername(secret, tokenStr string) (string, error) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractExpiration returns the expiry timestamp of a verified token.
func ExtractExpiration(secret, tokenStr string) (time.Time, error) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, jwt.ErrTokenInvalidClaims
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired reports whether a verified token's expiry is strictly
// before the current wall-clock time. No leeway is applied.
func IsExpired(secret, tokenStr string) (bool, error) {
	exp, err := ExtractExpiration(secret, tokenStr)
	if err != nil {
		return false, err
	}
	return exp.Before(time.Now()), nil
}
