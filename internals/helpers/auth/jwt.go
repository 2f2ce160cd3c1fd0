// file: internals/helpers/auth/jwt.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"mahotsav_backend/internals/configs"
)

// Bearer tokens are valid for a fixed 30 days; there is no refresh flow.
const TokenTTL = 30 * 24 * time.Hour

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

func secret() (string, error) {
	s := strings.TrimSpace(configs.JWTSecret)
	if s == "" {
		return "", ErrMissingSecret
	}
	return s, nil
}

// BuildUserClaims embeds the attendee's subject id only.
func BuildUserClaims(id uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":  id.String(),
		"sub": id.String(),
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	}
}

// BuildAdminClaims embeds the subject id plus the admin's public id and role.
func BuildAdminClaims(id uuid.UUID, adminID, role string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":       id.String(),
		"sub":      id.String(),
		"admin_id": adminID,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
}

func SignClaims(claims jwt.MapClaims) (string, error) {
	sec, err := secret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(sec))
}

// GenerateUserToken issues the attendee bearer token.
func GenerateUserToken(id uuid.UUID) (string, error) {
	return SignClaims(BuildUserClaims(id, time.Now().UTC()))
}

// GenerateAdminToken issues the staff bearer token.
func GenerateAdminToken(id uuid.UUID, adminID, role string) (string, error) {
	return SignClaims(BuildAdminClaims(id, adminID, role, time.Now().UTC()))
}

// ParseClaims verifies signature and expiry and returns the claims.
func ParseClaims(tokenString string) (jwt.MapClaims, error) {
	sec, err := secret()
	if err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sec), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// SubjectID pulls the uuid subject from claims ("id" with "sub" fallback).
func SubjectID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return uuid.Parse(v)
		}
	}
	return uuid.Nil, errors.New("token has no subject id")
}

// AdminIDClaim returns the admin's public id claim, if present.
func AdminIDClaim(claims jwt.MapClaims) string {
	if v, ok := claims["admin_id"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// RoleClaim returns the role claim, if present.
func RoleClaim(claims jwt.MapClaims) string {
	if v, ok := claims["role"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
