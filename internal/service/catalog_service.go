package service

import (
	"context"
	"strings"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService struct {
	categories repository.CategoryRepo
	products   repository.ProductRepo
	now        func() time.Time
	log        *zap.Logger
}

func NewCatalogService(categories repository.CategoryRepo, products repository.ProductRepo, log *zap.Logger) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		now:        time.Now,
		log:        log,
	}
}

type ProductInput struct {
	CategoryID uuid.UUID
	Name       string
	About      string
	PriceCents int64
	Quantity   int64
	IsActive   bool
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string, parentID *uuid.UUID) (*models.Category, error) {
	if err := RequireCapability(ctx, CapManageCatalog); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if existing, err := s.categories.GetByName(ctx, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrCategoryExists
	}

	if parentID != nil {
		parent, err := s.categories.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	c := &models.Category{Name: name, ParentID: parentID}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListRootCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListRoots(ctx)
}

// Descendants возвращает все подкатегории корня, обходя дерево уровнями по
// ссылкам на детей. Глубина нигде не хранится — итерация идёт, пока уровень
// не окажется пустым. Visited-set защищает от испорченного графа родителей:
// повторная встреча узла означает цикл, и обход прерывается с ошибкой
// вместо зацикливания.
func (s *CatalogService) Descendants(ctx context.Context, rootID uuid.UUID, includeSelf bool) ([]models.Category, error) {
	root, err := s.categories.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrCategoryNotFound
	}

	visited := map[uuid.UUID]bool{rootID: true}
	var result []models.Category
	if includeSelf {
		result = append(result, *root)
	}

	frontier := []uuid.UUID{rootID}
	for len(frontier) > 0 {
		children, err := s.categories.ListChildrenOf(ctx, frontier)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, child := range children {
			if visited[child.ID] {
				return nil, ErrCategoryCycle
			}
			visited[child.ID] = true
			result = append(result, child)
			frontier = append(frontier, child.ID)
		}
	}

	return result, nil
}

// ListProductsByCategory — товары всего поддерева категории.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.Product, int64, error) {
	descendants, err := s.Descendants(ctx, categoryID, true)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(descendants))
	for _, c := range descendants {
		ids = append(ids, c.ID)
	}

	return s.products.List(ctx, repository.ProductListFilter{
		CategoryIDs: ids,
		OnlyActive:  true,
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	return s.products.List(ctx, repository.ProductListFilter{
		OnlyActive: true,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if !HasCapability(role, CapManageCatalog) {
		return nil, ErrForbidden
	}

	if in.PriceCents <= 0 {
		return nil, ErrPriceInvalid
	}
	if in.Quantity < 0 {
		return nil, ErrQuantityInvalid
	}

	cat, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	now := s.now()
	p := &models.Product{
		CategoryID: in.CategoryID,
		UserID:     userID,
		Name:       strings.TrimSpace(in.Name),
		About:      strings.TrimSpace(in.About),
		PriceCents: in.PriceCents,
		Quantity:   in.Quantity,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return false, err
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, ErrProductNotFound
	}
	// владелец может удалить свой товар, менеджер каталога — любой
	if p.UserID != userID && !HasCapability(role, CapManageCatalog) {
		return false, ErrForbidden
	}

	return s.products.Delete(ctx, id)
}

func (s *CatalogService) SetDiscount(ctx context.Context, productID uuid.UUID, percentage int64) error {
	if err := RequireCapability(ctx, CapManageDiscounts); err != nil {
		return err
	}
	if percentage < 0 || percentage > 100 {
		return ErrPercentageInvalid
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	return s.products.UpsertDiscount(ctx, productID, percentage)
}

func (s *CatalogService) RemoveDiscount(ctx context.Context, productID uuid.UUID) (bool, error) {
	if err := RequireCapability(ctx, CapManageDiscounts); err != nil {
		return false, err
	}
	return s.products.DeleteDiscount(ctx, productID)
}
