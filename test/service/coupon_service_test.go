package service_test

import (
	"context"
	"errors"
	"testing"

	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCouponService_CreateCoupon_GeneratesCodeAndRarity(t *testing.T) {
	var saved *models.Coupon
	coupons := &MockCouponRepo{
		CreateFunc: func(ctx context.Context, c *models.Coupon) error {
			// rarity выводится хуком при записи; мок делает то же
			c.Rarity = models.RarityFor(c.Amount)
			saved = c
			return nil
		},
	}
	svc := service.NewCouponService(coupons, zap.NewNop())

	c, err := svc.CreateCoupon(authCtx(uuid.New(), models.RoleProductManager), 5000)
	if err != nil {
		t.Fatalf("CreateCoupon: %v", err)
	}
	if len(c.Code) != 8 {
		t.Errorf("code expected 8 chars, got %q", c.Code)
	}
	if saved.Rarity != models.RarityEpic {
		t.Errorf("rarity expected Epic for 5000, got %s", saved.Rarity)
	}
	if !c.IsActive {
		t.Error("new coupon expected active")
	}
}

func TestCouponService_CreateCoupon_AmountBounds(t *testing.T) {
	svc := service.NewCouponService(&MockCouponRepo{}, zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleProductManager)

	if _, err := svc.CreateCoupon(ctx, 0); !errors.Is(err, models.ErrCouponAmountOutOfRange) {
		t.Errorf("amount 0 expected out of range, got %v", err)
	}
	if _, err := svc.CreateCoupon(ctx, 1_000_001); !errors.Is(err, models.ErrCouponAmountOutOfRange) {
		t.Errorf("amount 1000001 expected out of range, got %v", err)
	}
}

func TestCouponService_CreateCoupon_RequiresCapability(t *testing.T) {
	svc := service.NewCouponService(&MockCouponRepo{}, zap.NewNop())

	if _, err := svc.CreateCoupon(authCtx(uuid.New(), models.RoleCustomer), 100); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("customer expected ErrForbidden, got %v", err)
	}
}

func TestCouponService_CheckCoupon(t *testing.T) {
	coupons := &MockCouponRepo{
		GetActiveByCodeFunc: func(ctx context.Context, code string) (*models.Coupon, error) {
			if code == "GOOD" {
				return &models.Coupon{ID: uuid.New(), Code: code, Amount: 50, IsActive: true}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewCouponService(coupons, zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	chk, err := svc.CheckCoupon(ctx, "GOOD")
	if err != nil {
		t.Fatalf("CheckCoupon: %v", err)
	}
	if !chk.Valid || chk.Amount != 50 {
		t.Errorf("expected valid/50, got %+v", chk)
	}

	chk, err = svc.CheckCoupon(ctx, "BAD")
	if err != nil {
		t.Fatalf("CheckCoupon: %v", err)
	}
	if chk.Valid {
		t.Error("unknown code expected invalid")
	}
}

func TestWishlistService_Add_RequiresExistingProduct(t *testing.T) {
	productID := uuid.New()
	added := false
	wishlists := &MockWishlistRepo{
		AddFunc: func(ctx context.Context, userID, pid uuid.UUID) error {
			added = true
			return nil
		},
	}
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			if id == productID {
				return &models.Product{ID: productID, Name: "x", PriceCents: 100, IsActive: true}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewWishlistService(wishlists, products)
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	if err := svc.Add(ctx, uuid.New()); !errors.Is(err, service.ErrProductNotFound) {
		t.Errorf("unknown product expected ErrProductNotFound, got %v", err)
	}
	if added {
		t.Error("nothing must be added for unknown product")
	}

	if err := svc.Add(ctx, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !added {
		t.Error("wishlist entry expected")
	}
}
