package service_test

import (
	"context"
	"errors"
	"testing"

	"shop-service/internal/cart"
	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionWithCart — стор на одну сессию, живущий в памяти теста.
func sessionWithCart(c *cart.Cart) *MockSessionStore {
	return &MockSessionStore{
		LoadCartFunc: func(ctx context.Context, sessionID string) (*cart.Cart, error) {
			return c, nil
		},
	}
}

func TestCartService_AddItem_SnapshotsPriceOnce(t *testing.T) {
	productID := uuid.New()
	price := int64(1000)

	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			return &models.Product{ID: productID, Name: "x", PriceCents: price, Quantity: 10, IsActive: true}, nil
		},
	}

	c := cart.New()
	svc := service.NewCartService(products, sessionWithCart(c), zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	if err := svc.AddItem(ctx, "s", productID, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// цена выросла — снимок первой закладки остаётся
	price = 1500
	if err := svc.AddItem(ctx, "s", productID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	line, ok := c.Get(productID)
	if !ok {
		t.Fatal("line expected in cart")
	}
	if line.Quantity != 3 {
		t.Errorf("quantity expected 3 got %d", line.Quantity)
	}
	if line.UnitPriceCents != 1000 {
		t.Errorf("snapshot price expected 1000 got %d", line.UnitPriceCents)
	}
}

func TestCartService_AddItem_UnknownOrInactiveProduct(t *testing.T) {
	inactive := uuid.New()
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			if id == inactive {
				return &models.Product{ID: inactive, Name: "x", PriceCents: 100, IsActive: false}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewCartService(products, &MockSessionStore{}, zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	if err := svc.AddItem(ctx, "s", uuid.New(), 1); !errors.Is(err, service.ErrProductNotFound) {
		t.Errorf("unknown product expected ErrProductNotFound, got %v", err)
	}
	if err := svc.AddItem(ctx, "s", inactive, 1); !errors.Is(err, service.ErrProductNotFound) {
		t.Errorf("inactive product expected ErrProductNotFound, got %v", err)
	}
	if err := svc.AddItem(ctx, "s", inactive, 0); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Errorf("zero quantity expected ErrQuantityInvalid, got %v", err)
	}
}

func TestCartService_UpdateItem_BelowOneRemoves(t *testing.T) {
	productID := uuid.New()
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			return &models.Product{ID: productID, Name: "x", PriceCents: 500, Quantity: 10, IsActive: true}, nil
		},
	}

	c := cart.New()
	c.Add(productID, 2, 500)

	svc := service.NewCartService(products, sessionWithCart(c), zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	if err := svc.UpdateItem(ctx, "s", productID, 5); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if line, _ := c.Get(productID); line.Quantity != 5 {
		t.Errorf("quantity expected 5 got %d", line.Quantity)
	}

	if err := svc.UpdateItem(ctx, "s", productID, 0); err != nil {
		t.Fatalf("UpdateItem to 0: %v", err)
	}
	if !c.IsEmpty() {
		t.Error("quantity below one expected to remove the line")
	}
}

func TestCartService_UpdateItem_RejectsOversizedQuantity(t *testing.T) {
	productID := uuid.New()
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			return &models.Product{ID: productID, Name: "x", PriceCents: 500, Quantity: 10, IsActive: true}, nil
		},
	}

	c := cart.New()
	c.Add(productID, 2, 500)

	svc := service.NewCartService(products, sessionWithCart(c), zap.NewNop())
	ctx := authCtx(uuid.New(), models.RoleCustomer)

	// 2^32+1 при усечении до uint32 превратился бы в 1 — вместо этого ошибка
	if err := svc.UpdateItem(ctx, "s", productID, 4294967297); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("oversized quantity expected ErrQuantityInvalid, got %v", err)
	}
	if line, _ := c.Get(productID); line.Quantity != 2 {
		t.Errorf("quantity expected untouched (2), got %d", line.Quantity)
	}
}

func TestCartService_RemoveItem_MissingIsNoop(t *testing.T) {
	c := cart.New()
	svc := service.NewCartService(&MockProductRepo{}, sessionWithCart(c), zap.NewNop())

	if err := svc.RemoveItem(authCtx(uuid.New(), models.RoleCustomer), "s", uuid.New()); err != nil {
		t.Fatalf("RemoveItem on empty cart: %v", err)
	}
}

func TestCartService_View_EnrichesFromCatalog(t *testing.T) {
	productID := uuid.New()
	products := &MockProductRepo{
		BatchGetByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
			return []models.Product{{ID: productID, Name: "Widget", About: "useful", PriceCents: 1000, IsActive: true}}, nil
		},
	}

	c := cart.New()
	c.Add(productID, 2, 900) // снимок ниже текущей цены

	svc := service.NewCartService(products, sessionWithCart(c), zap.NewNop())

	view, err := svc.View(authCtx(uuid.New(), models.RoleCustomer), "s")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Count != 2 {
		t.Errorf("count expected 2 got %d", view.Count)
	}
	if view.TotalCents != 1800 {
		t.Errorf("total expected 1800 got %d", view.TotalCents)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items expected 1 got %d", len(view.Items))
	}
	it := view.Items[0]
	if it.Name != "Widget" || it.UnitPriceCents != 900 || it.LineTotalCents != 1800 {
		t.Errorf("unexpected line view: %+v", it)
	}
}
