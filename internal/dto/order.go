package dto

import "time"

type OrderItemResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   uint32 `json:"quantity"`
	PriceCents int64  `json:"price_cents"` // сумма по строке
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	TotalPriceCents int64               `json:"total_price_cents"`
	IsActive        bool                `json:"is_active"`
	OrderDate       time.Time           `json:"order_date"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type ConfirmOrderRequest struct {
	CouponCode *string `json:"coupon_code,omitempty"`
}

type CheckoutResponse struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	AddressID       string  `json:"address_id"`
	CouponID        *string `json:"coupon_id,omitempty"`
	TotalPriceCents int64   `json:"total_price_cents"`
}
