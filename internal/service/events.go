package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  uint32    `json:"quantity"`
	LineTotal int64     `json:"line_total_cents"`
}

type OrderPlacedEvent struct {
	OrderID    uuid.UUID        `json:"order_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Items      []OrderItemEvent `json:"items"`
	TotalCents int64            `json:"total_cents"`
	PlacedAt   time.Time        `json:"placed_at"`
}

type OrderConfirmedEvent struct {
	CheckoutID  uuid.UUID  `json:"checkout_id"`
	OrderID     uuid.UUID  `json:"order_id"`
	UserID      uuid.UUID  `json:"user_id"`
	CouponID    *uuid.UUID `json:"coupon_id,omitempty"`
	TotalCents  int64      `json:"total_cents"`
	ConfirmedAt time.Time  `json:"confirmed_at"`
}

type EventBus interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlacedEvent) error
	PublishOrderConfirmed(ctx context.Context, e OrderConfirmedEvent) error
}
