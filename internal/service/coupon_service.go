package service

import (
	"context"
	"strings"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/nanorand/nanorand"
	"go.uber.org/zap"
)

type CouponService struct {
	coupons repository.CouponRepo
	log     *zap.Logger
}

func NewCouponService(coupons repository.CouponRepo, log *zap.Logger) *CouponService {
	return &CouponService{coupons: coupons, log: log}
}

type CouponCheck struct {
	Valid  bool  `json:"valid"`
	Amount int64 `json:"amount,omitempty"`
}

// CreateCoupon генерирует код и сохраняет купон; rarity выводится из
// номинала при записи и снаружи не задаётся.
func (s *CouponService) CreateCoupon(ctx context.Context, amount int64) (*models.Coupon, error) {
	if err := RequireCapability(ctx, CapManageDiscounts); err != nil {
		return nil, err
	}
	if amount < models.CouponAmountMin || amount > models.CouponAmountMax {
		return nil, models.ErrCouponAmountOutOfRange
	}

	code, err := nanorand.Gen(8)
	if err != nil {
		return nil, err
	}

	c := &models.Coupon{
		Code:     strings.ToUpper(code),
		Amount:   amount,
		IsActive: true,
	}
	if err := s.coupons.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckCoupon — read-only проверка кода для витрины.
func (s *CouponService) CheckCoupon(ctx context.Context, code string) (*CouponCheck, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	c, err := s.coupons.GetActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &CouponCheck{Valid: false}, nil
	}
	return &CouponCheck{Valid: true, Amount: c.Amount}, nil
}

func (s *CouponService) ListCoupons(ctx context.Context, limit, offset int) ([]models.Coupon, int64, error) {
	if err := RequireCapability(ctx, CapManageDiscounts); err != nil {
		return nil, 0, err
	}
	return s.coupons.List(ctx, limit, offset)
}
