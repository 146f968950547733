package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret, issuer, audience string, sub uuid.UUID, role string, method jwt.SigningMethod) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub.String(),
		"role": role,
		"iss":  issuer,
		"aud":  audience,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestHSVerifier_ValidToken(t *testing.T) {
	v := NewHSVerifier("secret", "shop", "shop-api")
	uid := uuid.New()

	raw := signToken(t, "secret", "shop", "shop-api", uid, "ROLE_CUSTOMER", jwt.SigningMethodHS256)

	claims, err := v.ParseAndValidateAccess(context.Background(), raw)
	if err != nil {
		t.Fatalf("ParseAndValidateAccess: %v", err)
	}
	if claims.UserID != uid {
		t.Errorf("user id expected %s got %s", uid, claims.UserID)
	}
	if claims.Role != "ROLE_CUSTOMER" {
		t.Errorf("role expected ROLE_CUSTOMER got %s", claims.Role)
	}
}

func TestHSVerifier_RejectsBadSignatureAndClaims(t *testing.T) {
	v := NewHSVerifier("secret", "shop", "shop-api")
	uid := uuid.New()

	cases := map[string]string{
		"wrong secret":   signToken(t, "other", "shop", "shop-api", uid, "x", jwt.SigningMethodHS256),
		"wrong issuer":   signToken(t, "secret", "evil", "shop-api", uid, "x", jwt.SigningMethodHS256),
		"wrong audience": signToken(t, "secret", "shop", "evil-api", uid, "x", jwt.SigningMethodHS256),
		"wrong alg":      signToken(t, "secret", "shop", "shop-api", uid, "x", jwt.SigningMethodHS512),
		"garbage":        "not.a.token",
	}
	for name, raw := range cases {
		if _, err := v.ParseAndValidateAccess(context.Background(), raw); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHSVerifier_RejectsExpired(t *testing.T) {
	v := NewHSVerifier("secret", "shop", "shop-api")

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "ROLE_CUSTOMER",
		"iss":  "shop",
		"aud":  "shop-api",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := v.ParseAndValidateAccess(context.Background(), raw); err == nil {
		t.Fatal("expired token expected to be rejected")
	}
}
