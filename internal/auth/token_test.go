package auth

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/model"
)

func newTestService(secret string) *Service {
	return NewService(config.AuthConfig{TokenSecret: secret, TokenValidityDays: 365})
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.Issue("a1b2c3d4e5f60718293a4b5c6d7e8f90", false, "", 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.DeviceID != "a1b2c3d4e5f60718293a4b5c6d7e8f90" {
		t.Fatalf("deviceId mismatch: got %q", claims.DeviceID)
	}
	if claims.IsPremium {
		t.Fatalf("expected isPremium=false")
	}

	validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if validity < 364*24*time.Hour || validity > 366*24*time.Hour {
		t.Fatalf("expected ~365 day validity, got %v", validity)
	}
}

func TestVerifyPremiumClaims(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.Issue("deadbeefdeadbeefdeadbeefdeadbeef", true, "user-1", 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !claims.IsPremium {
		t.Fatalf("expected isPremium=true")
	}
	if claims.UserID != "user-1" {
		t.Fatalf("userId mismatch: got %q", claims.UserID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := newTestService("secret-one").Issue("a1b2c3d4e5f60718293a4b5c6d7e8f90", false, "", 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := newTestService("secret-two").Verify(token); err == nil {
		t.Fatalf("expected verification to fail under a different secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := newTestService("test-secret")

	past := time.Now().Add(-48 * time.Hour)
	claims := &model.TokenClaims{
		DeviceID: "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := newTestService("test-secret")

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(token); err == nil {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}

func TestVerifyTamperedClaims(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.Issue("a1b2c3d4e5f60718293a4b5c6d7e8f90", false, "", 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Swap the claims segment for one from a premium token; the signature no
	// longer covers it.
	premium, err := svc.Issue("a1b2c3d4e5f60718293a4b5c6d7e8f90", true, "", 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	parts := strings.Split(token, ".")
	premiumParts := strings.Split(premium, ".")
	forged := parts[0] + "." + premiumParts[1] + "." + parts[2]

	if _, err := svc.Verify(forged); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestGenerateDeviceID(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateDeviceID()
		if err != nil {
			t.Fatalf("GenerateDeviceID failed: %v", err)
		}
		if !hexPattern.MatchString(id) {
			t.Fatalf("expected 32 lower-case hex characters, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate device ID %q", id)
		}
		seen[id] = true
	}
}
