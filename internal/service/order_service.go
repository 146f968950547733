package service

import (
	"context"
	"fmt"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"go.uber.org/zap"
)

// centsPerUnit — номинал купона хранится в целых единицах валюты.
const centsPerUnit = 100

type OrderService struct {
	orders    repository.OrderRepo
	items     repository.OrderItemRepo
	products  repository.ProductRepo
	checkouts repository.CheckoutRepo
	coupons   repository.CouponRepo
	addresses repository.AddressRepo
	sessions  SessionStore
	events    EventBus
	now       func() time.Time
	log       *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepo,
	items repository.OrderItemRepo,
	products repository.ProductRepo,
	checkouts repository.CheckoutRepo,
	coupons repository.CouponRepo,
	addresses repository.AddressRepo,
	sessions SessionStore,
	events EventBus,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		items:     items,
		products:  products,
		checkouts: checkouts,
		coupons:   coupons,
		addresses: addresses,
		sessions:  sessions,
		events:    events,
		now:       time.Now,
		log:       log,
	}
}

// Checkout превращает сессионную корзину в строки открытого заказа.
// Вся последовательность — одна транзакция: проверка остатков, upsert
// строк, списание запаса и пересчёт итога либо фиксируются целиком,
// либо не оставляют следа. Корзина чистится только после коммита.
func (s *OrderService) Checkout(ctx context.Context, sessionID string) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var order *models.Order

	err = s.orders.WithTx(ctx, func(orders repository.OrderRepo, items repository.OrderItemRepo, products repository.ProductRepo) error {
		// не больше одного открытого заказа: повторный checkout доливается
		// в существующий, блокировка строки сериализует гонку
		ord, err := orders.GetActiveByUser(ctx, userID, true)
		if err != nil {
			return err
		}
		if ord == nil {
			ord = &models.Order{
				UserID:    userID,
				IsActive:  true,
				OrderDate: s.now(),
			}
			inserted, err := orders.CreateActive(ctx, ord)
			if err != nil {
				return err
			}
			if !inserted {
				// гонка первых checkout'ов: победитель уже создал открытый
				// заказ, доливаемся в него под блокировкой
				ord, err = orders.GetActiveByUser(ctx, userID, true)
				if err != nil {
					return err
				}
				if ord == nil {
					return fmt.Errorf("active order missing after insert conflict: user %s", userID)
				}
			}
		}

		// порядок обхода детерминирован: product id по возрастанию
		for _, pid := range c.ProductIDs() {
			line, _ := c.Get(pid)

			p, err := products.GetByID(ctx, pid)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: %s", ErrProductNotFound, pid)
			}
			// остаток проверяется по текущему состоянию, не по снимку
			if p.Quantity < int64(line.Quantity) {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, p.Name)
			}

			unit := EffectiveUnitPriceCents(p)

			existing, err := items.GetByOrderAndProduct(ctx, ord.ID, pid)
			if err != nil {
				return err
			}
			if existing == nil {
				if err := items.Create(ctx, &models.OrderItem{
					OrderID:    ord.ID,
					ProductID:  pid,
					Quantity:   line.Quantity,
					PriceCents: unit * int64(line.Quantity),
				}); err != nil {
					return err
				}
			} else {
				// слияние с открытым заказом: количества складываются, строка
				// переоценивается по текущей эффективной цене, не по снимку
				newQty := existing.Quantity + line.Quantity
				if err := items.UpdateQuantityPrice(ctx, existing.ID, newQty, unit*int64(newQty)); err != nil {
					return err
				}
			}

			ok, err := products.DecrementStock(ctx, pid, int64(line.Quantity))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, p.Name)
			}
		}

		total, err := items.SumByOrder(ctx, ord.ID)
		if err != nil {
			return err
		}
		if err := orders.UpdateTotals(ctx, ord.ID, total); err != nil {
			return err
		}

		order, err = orders.GetByID(ctx, ord.ID)
		return err
	})
	if err != nil {
		// транзакция откатилась, корзина сессии не тронута — можно повторить
		return nil, err
	}

	if err := s.sessions.ClearCart(ctx, sessionID); err != nil {
		s.log.Warn("failed to clear session cart after checkout",
			zap.String("session", sessionID), zap.Error(err))
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				LineTotal: it.PriceCents,
			})
		}
		_ = s.events.PublishOrderPlaced(ctx, OrderPlacedEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			Items:      evItems,
			TotalCents: order.TotalPriceCents,
			PlacedAt:   s.now(),
		})
	}

	return order, nil
}

// ActiveOrder возвращает открытый заказ пользователя.
func (s *OrderService) ActiveOrder(ctx context.Context) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.orders.GetActiveByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrNoActiveOrder
	}
	return ord, nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	f := repository.OrderListFilter{Limit: limit, Offset: offset}
	if !HasCapability(role, CapManageOrders) {
		f.UserID = &userID
	}
	return s.orders.List(ctx, f)
}

// Confirm закрывает открытый заказ: создаёт персистентную запись
// подтверждения со связями на адрес и купон, считает итог со скидкой
// купона и деактивирует заказ, купон и саму запись — всё в одной
// транзакции. Неизвестный или неактивный код купона молча игнорируется.
func (s *OrderService) Confirm(ctx context.Context, couponCode *string) (*models.Checkout, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.orders.GetActiveByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrNoActiveOrder
	}

	addr, err := s.addresses.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrNoActiveAddress
	}

	var coupon *models.Coupon
	if couponCode != nil && *couponCode != "" {
		coupon, err = s.coupons.GetActiveByCode(ctx, *couponCode)
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			s.log.Info("coupon code ignored", zap.String("code", *couponCode))
		}
	}

	var record *models.Checkout

	err = s.checkouts.WithTx(ctx, func(checkouts repository.CheckoutRepo, orders repository.OrderRepo, coupons repository.CouponRepo) error {
		rec := &models.Checkout{
			UserID:    userID,
			OrderID:   ord.ID,
			AddressID: addr.ID,
			IsActive:  true,
		}
		if coupon != nil {
			rec.CouponID = &coupon.ID
		}
		if err := checkouts.Create(ctx, rec); err != nil {
			return err
		}

		total := ord.TotalPriceCents
		if coupon != nil {
			total -= coupon.Amount * centsPerUnit
			if total < 0 {
				// купон больше итога — в ноль, отрицательных сумм не бывает
				total = 0
			}
		}
		if err := checkouts.UpdateTotal(ctx, rec.ID, total); err != nil {
			return err
		}

		if err := orders.Deactivate(ctx, ord.ID); err != nil {
			return err
		}
		if coupon != nil {
			if err := coupons.Deactivate(ctx, coupon.ID); err != nil {
				return err
			}
		}
		// запись создаётся активной и тут же закрывается: она документирует
		// завершённую операцию, а не состояние "в процессе"
		if err := checkouts.Deactivate(ctx, rec.ID); err != nil {
			return err
		}

		rec.TotalPriceCents = total
		rec.IsActive = false
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderConfirmed(ctx, OrderConfirmedEvent{
			CheckoutID:  record.ID,
			OrderID:     record.OrderID,
			UserID:      record.UserID,
			CouponID:    record.CouponID,
			TotalCents:  record.TotalPriceCents,
			ConfirmedAt: s.now(),
		})
	}

	return record, nil
}
