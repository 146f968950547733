package service

import (
	"context"
	"math"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService struct {
	products repository.ProductRepo
	sessions SessionStore
	log      *zap.Logger
}

func NewCartService(products repository.ProductRepo, sessions SessionStore, log *zap.Logger) *CartService {
	return &CartService{
		products: products,
		sessions: sessions,
		log:      log,
	}
}

type CartLineView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Quantity       uint32    `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type CartView struct {
	Items      []CartLineView `json:"items"`
	Count      uint32         `json:"count"`
	TotalCents int64          `json:"total_cents"`
}

// AddItem кладёт товар в сессионную корзину. Эффективная цена снимается
// один раз, при первом добавлении; повторные вызовы только наращивают
// количество.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty uint32) error {
	if _, _, err := requireAuth(ctx); err != nil {
		return err
	}
	if qty == 0 {
		return ErrQuantityInvalid
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil || !p.IsActive {
		return ErrProductNotFound
	}

	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return err
	}

	c.Add(productID, qty, EffectiveUnitPriceCents(p))
	return s.sessions.SaveCart(ctx, sessionID, c)
}

// UpdateItem выставляет количество позиции; qty < 1 удаляет её. Снимок цены
// пересчитывается только для позиции, которой в корзине ещё не было.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) error {
	if _, _, err := requireAuth(ctx); err != nil {
		return err
	}
	// количество хранится как uint32: переполнение — ошибка, не обрезка
	if int64(qty) > math.MaxUint32 {
		return ErrQuantityInvalid
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return err
	}

	c.SetQuantity(productID, qty, EffectiveUnitPriceCents(p))
	return s.sessions.SaveCart(ctx, sessionID, c)
}

// RemoveItem убирает позицию; отсутствие её в корзине — не ошибка.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) error {
	if _, _, err := requireAuth(ctx); err != nil {
		return err
	}

	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return err
	}

	c.Remove(productID)
	return s.sessions.SaveCart(ctx, sessionID, c)
}

func (s *CartService) Count(ctx context.Context, sessionID string) (uint32, error) {
	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.Count(), nil
}

// View собирает корзину для показа, обогащая позиции данными каталога.
func (s *CartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		Items:      make([]CartLineView, 0, c.Len()),
		Count:      c.Count(),
		TotalCents: c.TotalCents(),
	}
	if c.IsEmpty() {
		return view, nil
	}

	ids := c.ProductIDs()
	list, err := s.products.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	for _, id := range ids {
		line, _ := c.Get(id)
		p, ok := byID[id]
		if !ok {
			// товар успели удалить из каталога — позицию показываем без описания
			s.log.Warn("cart references missing product", zap.String("product_id", id.String()))
		}
		view.Items = append(view.Items, CartLineView{
			ProductID:      id,
			Name:           p.Name,
			About:          p.About,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			LineTotalCents: line.UnitPriceCents * int64(line.Quantity),
		})
	}

	return view, nil
}
