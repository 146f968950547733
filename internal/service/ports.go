package service

import (
	"context"
	"time"

	"shop-service/internal/cart"

	"github.com/google/uuid"
)

// SessionStore — сессионный коллаборатор: корзина читается и пишется
// только через него, внутри запроса она живёт как значение.
type SessionStore interface {
	LoadCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error
	ClearCart(ctx context.Context, sessionID string) error
}

// Claims — результат проверки access-токена на транспортном слое.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Exp    time.Time
}
