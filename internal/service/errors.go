package service

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category already exists")
	ErrCategoryCycle     = errors.New("category tree contains a cycle")
	ErrProductNotFound   = errors.New("product not found")
	ErrQuantityInvalid   = errors.New("quantity must be > 0")
	ErrPriceInvalid      = errors.New("price must be > 0")
	ErrPercentageInvalid = errors.New("discount percentage must be in [0, 100]")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoActiveOrder     = errors.New("no active order")
	ErrNoActiveAddress   = errors.New("no active address")
	ErrAddressNotFound   = errors.New("address not found")
	ErrCouponNotFound    = errors.New("coupon not found")
)
