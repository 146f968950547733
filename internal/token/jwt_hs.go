package token

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HSVerifier проверяет access-токены, подписанные HS256. Выпуск токенов —
// зона ответственности внешнего identity-провайдера.
type HSVerifier struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

func NewHSVerifier(secret, issuer, audience string) *HSVerifier {
	return &HSVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

type customClaims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (v *HSVerifier) ParseAndValidateAccess(ctx context.Context, token string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithAudience(v.audience), jwt.WithIssuer(v.issuer))
	if err != nil {
		return nil, err
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	uid, err := uuid.Parse(cc.Sub)
	if err != nil {
		return nil, err
	}
	claims := &service.Claims{UserID: uid, Role: cc.Role}
	if cc.ExpiresAt != nil {
		claims.Exp = cc.ExpiresAt.Time
	}
	return claims, nil
}
