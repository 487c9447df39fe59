package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the identity extracted from a validated token. It is
// trusted for the remainder of the request.
type TokenClaims struct {
	UserID uint64
	Role   models.Role
}

// ErrMissingToken is returned when no bearer token is presented.
var ErrMissingToken = errors.New("missing bearer token")

// ErrInvalidToken wraps parsing/validation errors.
var ErrInvalidToken = errors.New("invalid bearer token")

// IssueToken signs an HS256 token binding the user id and role.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatUint(user.ID, 10),
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"iss":  cfg.JWTIssuer,
		"iat":  now.Unix(),
		"exp":  now.Add(cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a token and returns normalized claims.
func ParseToken(cfg *config.Config, token string) (*TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithIssuer(cfg.JWTIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	if subject == "" || roleStr == "" {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: userID, Role: role}, nil
}
