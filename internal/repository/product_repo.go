package repository

import (
	"context"
	"errors"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductListFilter struct {
	CategoryIDs []uuid.UUID
	OnlyActive  bool
	Limit       int
	Offset      int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Delete — логическое удаление: товар деактивируется и помечается удалённым.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// DecrementStock атомарно списывает запас; false — если остатка не хватает.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int64) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID, qty int64) error
	// UpsertDiscount создаёт или заменяет скидку товара (скидка 1:1).
	UpsertDiscount(ctx context.Context, productID uuid.UUID, percentage int64) error
	DeleteDiscount(ctx context.Context, productID uuid.UUID) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Discount").First(&p, "id = ? AND is_deleted = false", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []models.Product
	err := r.db.WithContext(ctx).Preload("Discount").
		Where("id IN ? AND is_deleted = false", ids).
		Find(&list).Error
	return list, err
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_deleted = false")

	if len(f.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", f.CategoryIDs)
	}
	if f.OnlyActive {
		q = q.Where("is_active = true")
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

	var list []models.Product
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Preload("Discount").Find(&list).Error
	return list, total, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ? AND is_deleted = false", id).
		Updates(map[string]any{"is_active": false, "is_deleted": true})
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int64) (bool, error) {
	// атомарно: quantity -= qty, только если хватает остатка
	tx := r.db.WithContext(ctx).Exec(`
UPDATE products
SET quantity = quantity - @q,
    updated_at = now()
WHERE id = @pid
  AND quantity >= @q
`, map[string]any{
		"pid": id,
		"q":   qty,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) IncrementStock(ctx context.Context, id uuid.UUID, qty int64) error {
	return r.db.WithContext(ctx).Exec(`
UPDATE products
SET quantity = quantity + @q,
    updated_at = now()
WHERE id = @pid
`, map[string]any{
		"pid": id,
		"q":   qty,
	}).Error
}

func (r *productRepo) UpsertDiscount(ctx context.Context, productID uuid.UUID, percentage int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"percentage": percentage, "is_active": true}),
		}).
		Create(&models.Discount{ProductID: productID, Percentage: percentage, IsActive: true}).Error
}

func (r *productRepo) DeleteDiscount(ctx context.Context, productID uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Discount{})
	return tx.RowsAffected > 0, tx.Error
}
