package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/model"
)

// Service issues and verifies compact HS256 device tokens. A single shared
// secret is enough for a single-backend deployment; no key rotation.
type Service struct {
	secret       []byte
	validityDays int
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		secret:       []byte(cfg.TokenSecret),
		validityDays: cfg.TokenValidityDays,
	}
}

// Issue creates a signed token for the given identity. Validity defaults to
// the configured window (365 days) when validityDays is zero.
func (s *Service) Issue(deviceID string, isPremium bool, userID string, validityDays int) (string, error) {
	if validityDays <= 0 {
		validityDays = s.validityDays
	}

	now := time.Now()
	claims := &model.TokenClaims{
		DeviceID:  deviceID,
		IsPremium: isPremium,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, validityDays)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Any defect --
// wrong segment count, bad signature, unparseable claims, past expiry --
// comes back as an error, never a panic.
func (s *Service) Verify(tokenStr string) (*model.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*model.TokenClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GenerateDeviceID returns 16 cryptographically random bytes as 32 lower-case
// hex characters.
func GenerateDeviceID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate device ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
