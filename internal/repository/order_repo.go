package repository

import (
	"context"
	"errors"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderListFilter struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	// CreateActive вставляет открытый заказ с учётом частичного уникального
	// индекса ux_orders_user_active: проигравшая гонку вставка ничего не
	// делает и возвращает false — заказ победителя берётся повторной выборкой.
	CreateActive(ctx context.Context, o *models.Order) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetActiveByUser возвращает открытый заказ пользователя (их не больше одного).
	// Блокирующая выборка внутри транзакции сериализует конкурентные checkout'ы.
	GetActiveByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*models.Order, error)
	UpdateTotals(ctx context.Context, id uuid.UUID, totalCents int64) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error)

	// WithTx — транзакционная граница финализации заказа: закрывающая функция
	// получает репозитории, привязанные к одной транзакции.
	WithTx(ctx context.Context, fn func(orders OrderRepo, items OrderItemRepo, products ProductRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) CreateActive(ctx context.Context, o *models.Order) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "user_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("is_active")}},
		DoNothing:   true,
	}).Create(o)
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*models.Order, error) {
	q := r.db.WithContext(ctx)
	if forUpdate {
		// row-level lock: конкурентные checkout'ы одного пользователя встают в очередь
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	} else {
		q = q.Preload("Items")
	}

	var ord models.Order
	err := q.First(&ord, "user_id = ? AND is_active = true", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, totalCents int64) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("total_price_cents", totalCents).Error
}

func (r *orderRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Order
	err := q.Order("order_date DESC").Limit(f.Limit).Offset(f.Offset).Preload("Items").Find(&list).Error
	return list, total, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(orders OrderRepo, items OrderItemRepo, products ProductRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx}, &productRepo{db: tx})
	})
}
