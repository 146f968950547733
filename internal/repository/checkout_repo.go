package repository

import (
	"context"
	"errors"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutRepo interface {
	Create(ctx context.Context, c *models.Checkout) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Checkout, error)
	UpdateTotal(ctx context.Context, id uuid.UUID, totalCents int64) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Checkout, error)

	// WithTx — граница подтверждения заказа: запись, заказ и купон
	// закрываются все вместе или никак.
	WithTx(ctx context.Context, fn func(checkouts CheckoutRepo, orders OrderRepo, coupons CouponRepo) error) error
}

type checkoutRepo struct{ db *gorm.DB }

func NewCheckoutRepo(db *gorm.DB) CheckoutRepo { return &checkoutRepo{db: db} }

func (r *checkoutRepo) Create(ctx context.Context, c *models.Checkout) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *checkoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Checkout, error) {
	var c models.Checkout
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *checkoutRepo) UpdateTotal(ctx context.Context, id uuid.UUID, totalCents int64) error {
	return r.db.WithContext(ctx).Model(&models.Checkout{}).Where("id = ?", id).
		Update("total_price_cents", totalCents).Error
}

func (r *checkoutRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Checkout{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *checkoutRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Checkout, error) {
	var list []models.Checkout
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *checkoutRepo) WithTx(ctx context.Context, fn func(checkouts CheckoutRepo, orders OrderRepo, coupons CouponRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutRepo{db: tx}, &orderRepo{db: tx}, &couponRepo{db: tx})
	})
}
