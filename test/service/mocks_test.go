package service_test

import (
	"context"

	"shop-service/internal/cart"
	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

// Моки для всех зависимостей сервисного слоя

// MockCategoryRepo
type MockCategoryRepo struct {
	CreateFunc         func(ctx context.Context, c *models.Category) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByNameFunc      func(ctx context.Context, name string) (*models.Category, error)
	ListRootsFunc      func(ctx context.Context) ([]models.Category, error)
	ListChildrenOfFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]models.Category, error)
	UpdateNameFunc     func(ctx context.Context, id uuid.UUID, name string) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryRepo) ListRoots(ctx context.Context) ([]models.Category, error) {
	if m.ListRootsFunc != nil {
		return m.ListRootsFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepo) ListChildrenOf(ctx context.Context, parentIDs []uuid.UUID) ([]models.Category, error) {
	if m.ListChildrenOfFunc != nil {
		return m.ListChildrenOfFunc(ctx, parentIDs)
	}
	return nil, nil
}

func (m *MockCategoryRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

// MockProductRepo
type MockProductRepo struct {
	CreateFunc         func(ctx context.Context, p *models.Product) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	BatchGetByIDsFunc  func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	ListFunc           func(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	UpdateFieldsFunc   func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
	DecrementStockFunc func(ctx context.Context, id uuid.UUID, qty int64) (bool, error)
	IncrementStockFunc func(ctx context.Context, id uuid.UUID, qty int64) error
	UpsertDiscountFunc func(ctx context.Context, productID uuid.UUID, percentage int64) error
	DeleteDiscountFunc func(ctx context.Context, productID uuid.UUID) (bool, error)
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int64) (bool, error) {
	if m.DecrementStockFunc != nil {
		return m.DecrementStockFunc(ctx, id, qty)
	}
	return true, nil
}

func (m *MockProductRepo) IncrementStock(ctx context.Context, id uuid.UUID, qty int64) error {
	if m.IncrementStockFunc != nil {
		return m.IncrementStockFunc(ctx, id, qty)
	}
	return nil
}

func (m *MockProductRepo) UpsertDiscount(ctx context.Context, productID uuid.UUID, percentage int64) error {
	if m.UpsertDiscountFunc != nil {
		return m.UpsertDiscountFunc(ctx, productID, percentage)
	}
	return nil
}

func (m *MockProductRepo) DeleteDiscount(ctx context.Context, productID uuid.UUID) (bool, error) {
	if m.DeleteDiscountFunc != nil {
		return m.DeleteDiscountFunc(ctx, productID)
	}
	return false, nil
}

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc          func(ctx context.Context, o *models.Order) error
	CreateActiveFunc    func(ctx context.Context, o *models.Order) (bool, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetActiveByUserFunc func(ctx context.Context, userID uuid.UUID, forUpdate bool) (*models.Order, error)
	UpdateTotalsFunc    func(ctx context.Context, id uuid.UUID, totalCents int64) error
	DeactivateFunc      func(ctx context.Context, id uuid.UUID) error
	ListFunc            func(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error)
	WithTxFunc          func(ctx context.Context, fn func(orders repository.OrderRepo, items repository.OrderItemRepo, products repository.ProductRepo) error) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) CreateActive(ctx context.Context, o *models.Order) (bool, error) {
	if m.CreateActiveFunc != nil {
		return m.CreateActiveFunc(ctx, o)
	}
	return true, nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*models.Order, error) {
	if m.GetActiveByUserFunc != nil {
		return m.GetActiveByUserFunc(ctx, userID, forUpdate)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, totalCents int64) error {
	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, id, totalCents)
	}
	return nil
}

func (m *MockOrderRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(orders repository.OrderRepo, items repository.OrderItemRepo, products repository.ProductRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return nil
}

// MockOrderItemRepo
type MockOrderItemRepo struct {
	CreateFunc               func(ctx context.Context, item *models.OrderItem) error
	GetByOrderAndProductFunc func(ctx context.Context, orderID, productID uuid.UUID) (*models.OrderItem, error)
	UpdateQuantityPriceFunc  func(ctx context.Context, id uuid.UUID, quantity uint32, priceCents int64) error
	ListByOrderFunc          func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	SumByOrderFunc           func(ctx context.Context, orderID uuid.UUID) (int64, error)
	DeleteByOrderIDFunc      func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderAndProduct(ctx context.Context, orderID, productID uuid.UUID) (*models.OrderItem, error) {
	if m.GetByOrderAndProductFunc != nil {
		return m.GetByOrderAndProductFunc(ctx, orderID, productID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) UpdateQuantityPrice(ctx context.Context, id uuid.UUID, quantity uint32, priceCents int64) error {
	if m.UpdateQuantityPriceFunc != nil {
		return m.UpdateQuantityPriceFunc(ctx, id, quantity, priceCents)
	}
	return nil
}

func (m *MockOrderItemRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.ListByOrderFunc != nil {
		return m.ListByOrderFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

func (m *MockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.DeleteByOrderIDFunc != nil {
		return m.DeleteByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

// MockCouponRepo
type MockCouponRepo struct {
	CreateFunc          func(ctx context.Context, c *models.Coupon) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	GetActiveByCodeFunc func(ctx context.Context, code string) (*models.Coupon, error)
	DeactivateFunc      func(ctx context.Context, id uuid.UUID) error
	ListFunc            func(ctx context.Context, limit, offset int) ([]models.Coupon, int64, error)
}

func (m *MockCouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCouponRepo) GetActiveByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if m.GetActiveByCodeFunc != nil {
		return m.GetActiveByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockCouponRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockCouponRepo) List(ctx context.Context, limit, offset int) ([]models.Coupon, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

// MockAddressRepo
type MockAddressRepo struct {
	CreateFunc               func(ctx context.Context, a *models.Address) error
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*models.Address, error)
	GetActiveByUserFunc      func(ctx context.Context, userID uuid.UUID) (*models.Address, error)
	ListByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	DeactivateAllForUserFunc func(ctx context.Context, userID uuid.UUID) error
	ActivateFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) (bool, error)
	WithTxFunc               func(ctx context.Context, fn func(addresses repository.AddressRepo) error) error
}

func (m *MockAddressRepo) Create(ctx context.Context, a *models.Address) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *MockAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAddressRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*models.Address, error) {
	if m.GetActiveByUserFunc != nil {
		return m.GetActiveByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAddressRepo) DeactivateAllForUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeactivateAllForUserFunc != nil {
		return m.DeactivateAllForUserFunc(ctx, userID)
	}
	return nil
}

func (m *MockAddressRepo) Activate(ctx context.Context, id uuid.UUID) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	return nil
}

func (m *MockAddressRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockAddressRepo) WithTx(ctx context.Context, fn func(addresses repository.AddressRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m)
}

// MockCheckoutRepo
type MockCheckoutRepo struct {
	CreateFunc      func(ctx context.Context, c *models.Checkout) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*models.Checkout, error)
	UpdateTotalFunc func(ctx context.Context, id uuid.UUID, totalCents int64) error
	DeactivateFunc  func(ctx context.Context, id uuid.UUID) error
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]models.Checkout, error)
	WithTxFunc      func(ctx context.Context, fn func(checkouts repository.CheckoutRepo, orders repository.OrderRepo, coupons repository.CouponRepo) error) error
}

func (m *MockCheckoutRepo) Create(ctx context.Context, c *models.Checkout) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCheckoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Checkout, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCheckoutRepo) UpdateTotal(ctx context.Context, id uuid.UUID, totalCents int64) error {
	if m.UpdateTotalFunc != nil {
		return m.UpdateTotalFunc(ctx, id, totalCents)
	}
	return nil
}

func (m *MockCheckoutRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockCheckoutRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Checkout, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCheckoutRepo) WithTx(ctx context.Context, fn func(checkouts repository.CheckoutRepo, orders repository.OrderRepo, coupons repository.CouponRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return nil
}

// MockWishlistRepo
type MockWishlistRepo struct {
	AddFunc        func(ctx context.Context, userID, productID uuid.UUID) error
	RemoveFunc     func(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.Wishlist, error)
}

func (m *MockWishlistRepo) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, productID)
	}
	return nil
}

func (m *MockWishlistRepo) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, productID)
	}
	return false, nil
}

func (m *MockWishlistRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Wishlist, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockSessionStore
type MockSessionStore struct {
	LoadCartFunc  func(ctx context.Context, sessionID string) (*cart.Cart, error)
	SaveCartFunc  func(ctx context.Context, sessionID string, c *cart.Cart) error
	ClearCartFunc func(ctx context.Context, sessionID string) error
}

func (m *MockSessionStore) LoadCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if m.LoadCartFunc != nil {
		return m.LoadCartFunc(ctx, sessionID)
	}
	return cart.New(), nil
}

func (m *MockSessionStore) SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error {
	if m.SaveCartFunc != nil {
		return m.SaveCartFunc(ctx, sessionID, c)
	}
	return nil
}

func (m *MockSessionStore) ClearCart(ctx context.Context, sessionID string) error {
	if m.ClearCartFunc != nil {
		return m.ClearCartFunc(ctx, sessionID)
	}
	return nil
}
