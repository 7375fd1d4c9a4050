// Package token issues and verifies the signed identity assertions used by
// the authorization gate.
//
// There is one signing domain per role space: the admin service and the user
// service hold distinct secrets, and every token additionally embeds an
// explicit role claim checked on verify. A structurally valid token presented
// to a verifier for the other role fails closed as forbidden.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "coursebay/pkg/domain-errors"
)

// Role names a signing domain.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Claims is the JWT claim set for coursebay access tokens.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies tokens for a single role's signing domain.
type Service struct {
	signingKey []byte
	role       Role
	ttl        time.Duration
}

// NewService builds a token service for one role. The signing key is injected
// from configuration; it is never read from ambient state.
func NewService(signingKey string, role Role, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		role:       role,
		ttl:        ttl,
	}
}

// Issue signs a token asserting subjectID's identity in this service's role,
// expiring ttl after now.
func (s *Service) Issue(subjectID string, now time.Time) (string, error) {
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: s.role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})

	signed, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Verify checks signature, expiry, and role, returning the subject ID.
// Signature and expiry failures are unauthorized; a role mismatch on an
// otherwise valid token is forbidden.
func (s *Service) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	if claims.Role != s.role {
		return "", dErrors.New(dErrors.CodeForbidden, "token issued for a different role")
	}
	if claims.Subject == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims.Subject, nil
}
