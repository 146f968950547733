package migrate

import (
	"context"

	"shop-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto, uuid-ossp, pg_trgm
	CreateChecks           bool // CHECK-constraint'ы
	CreateIndexes          bool // индексы и UNIQUE
	CreateFKsViaSQL        bool // FK через Exec после AutoMigrate
	CreateUpdatedAtTrigger bool // триггеры updated_at
	CreateSearchIndexes    bool // GIN trgm для поиска по name
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
		CreateSearchIndexes:    true,
	}
}

func MigrateShopDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы магазина")

	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		for _, ext := range []string{
			`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
			`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
			`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
		} {
			if err := db.Exec(ext).Error; err != nil {
				log.Error("extension error", zap.String("sql", ext), zap.Error(err))
				return err
			}
		}
		log.Info("Расширения созданы")
	}

	log.Info("Создание таблиц")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Discount{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Address{},
		&models.Checkout{},
		&models.Wishlist{},
	); err != nil {
		log.Error("AutoMigrate error", zap.Error(err))
		return err
	}
	log.Info("Таблицы созданы")

	if opt.CreateUpdatedAtTrigger {
		log.Info("Создание триггеров updated_at")
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_products_updated ON products;
CREATE TRIGGER trg_products_updated BEFORE UPDATE ON products
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_addresses_updated ON addresses;
CREATE TRIGGER trg_addresses_updated BEFORE UPDATE ON addresses
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("triggers error", zap.Error(err))
			return err
		}
		log.Info("Триггеры созданы")
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		checks := []struct {
			name string
			sql  string
		}{
			{"chk_products_price_positive", `
ALTER TABLE products
	DROP CONSTRAINT IF EXISTS chk_products_price_positive,
	ADD CONSTRAINT chk_products_price_positive
	CHECK (price_cents > 0);`},
			{"chk_products_quantity_non_negative", `
ALTER TABLE products
	DROP CONSTRAINT IF EXISTS chk_products_quantity_non_negative,
	ADD CONSTRAINT chk_products_quantity_non_negative
	CHECK (quantity >= 0);`},
			{"chk_discounts_percentage_range", `
ALTER TABLE discounts
	DROP CONSTRAINT IF EXISTS chk_discounts_percentage_range,
	ADD CONSTRAINT chk_discounts_percentage_range
	CHECK (percentage >= 0 AND percentage <= 100);`},
			{"chk_order_items_quantity_gt_zero", `
ALTER TABLE order_items
	DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero,
	ADD CONSTRAINT chk_order_items_quantity_gt_zero
	CHECK (quantity > 0);`},
			{"chk_coupons_amount_range", `
ALTER TABLE coupons
	DROP CONSTRAINT IF EXISTS chk_coupons_amount_range,
	ADD CONSTRAINT chk_coupons_amount_range
	CHECK (amount >= 1 AND amount <= 1000000);`},
			{"chk_coupons_rarity_allowed", `
ALTER TABLE coupons
	DROP CONSTRAINT IF EXISTS chk_coupons_rarity_allowed,
	ADD CONSTRAINT chk_coupons_rarity_allowed
	CHECK (rarity IN ('Common','Uncommon','Rare','Epic','Legendary'));`},
			{"chk_checkouts_total_non_negative", `
ALTER TABLE checkouts
	DROP CONSTRAINT IF EXISTS chk_checkouts_total_non_negative,
	ADD CONSTRAINT chk_checkouts_total_non_negative
	CHECK (total_price_cents >= 0);`},
		}

		for _, c := range checks {
			if err := db.Exec(c.sql).Error; err != nil {
				log.Error("check error", zap.String("constraint", c.name), zap.Error(err))
				return err
			}
		}
		log.Info("CHECK-и созданы")
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов и уникальностей")

		indexes := []string{
			// имена категорий и username — уникальны без учёта регистра
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_categories_name ON categories (lower(name));`,
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_username ON users (lower(username));`,
			// не больше одного активного адреса на пользователя — страховка к логике сервиса
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_addresses_user_active ON addresses (user_id) WHERE is_active;`,
			// не больше одного открытого заказа: конкурентные первые checkout'ы
			// нечего блокировать через FOR UPDATE, гонку закрывает индекс
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_user_active ON orders (user_id) WHERE is_active;`,
			`CREATE INDEX IF NOT EXISTS ix_products_category_created ON products (category_id, created_at DESC);`,
			`CREATE INDEX IF NOT EXISTS ix_products_active_created ON products (is_active, created_at DESC);`,
			`CREATE INDEX IF NOT EXISTS ix_orders_user_active ON orders (user_id, is_active);`,
		}
		for _, ix := range indexes {
			if err := db.Exec(ix).Error; err != nil {
				log.Error("index error", zap.String("sql", ix), zap.Error(err))
				return err
			}
		}
		log.Info("Индексы созданы")
	}

	if opt.CreateSearchIndexes {
		log.Info("Создание GIN(trgm) индексов для поиска")
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS gin_products_name_trgm
ON products USING gin (name gin_trgm_ops);
`).Error; err != nil {
			log.Error("gin name", zap.Error(err))
			return err
		}
		log.Info("GIN индексы созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")

		fks := []string{
			`ALTER TABLE categories
  DROP CONSTRAINT IF EXISTS fk_categories_parent,
  ADD CONSTRAINT fk_categories_parent
    FOREIGN KEY (parent_id) REFERENCES categories(id) ON DELETE CASCADE;`,
			`ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_category,
  ADD CONSTRAINT fk_products_category
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE;`,
			`ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_user,
  ADD CONSTRAINT fk_products_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
			`ALTER TABLE discounts
  DROP CONSTRAINT IF EXISTS fk_discounts_product,
  ADD CONSTRAINT fk_discounts_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`,
			`ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`,
			`ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product,
  ADD CONSTRAINT fk_order_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT;`,
			`ALTER TABLE addresses
  DROP CONSTRAINT IF EXISTS fk_addresses_user,
  ADD CONSTRAINT fk_addresses_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
			`ALTER TABLE checkouts
  DROP CONSTRAINT IF EXISTS fk_checkouts_order,
  ADD CONSTRAINT fk_checkouts_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`,
			`ALTER TABLE checkouts
  DROP CONSTRAINT IF EXISTS fk_checkouts_address,
  ADD CONSTRAINT fk_checkouts_address
    FOREIGN KEY (address_id) REFERENCES addresses(id) ON DELETE RESTRICT;`,
			`ALTER TABLE checkouts
  DROP CONSTRAINT IF EXISTS fk_checkouts_coupon,
  ADD CONSTRAINT fk_checkouts_coupon
    FOREIGN KEY (coupon_id) REFERENCES coupons(id) ON DELETE SET NULL;`,
			`ALTER TABLE wishlists
  DROP CONSTRAINT IF EXISTS fk_wishlists_user,
  ADD CONSTRAINT fk_wishlists_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
			`ALTER TABLE wishlists
  DROP CONSTRAINT IF EXISTS fk_wishlists_product,
  ADD CONSTRAINT fk_wishlists_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`,
		}
		for _, fk := range fks {
			if err := db.Exec(fk).Error; err != nil {
				log.Error("fk error", zap.String("sql", fk), zap.Error(err))
				return err
			}
		}
		log.Info("Внешние ключи созданы")
	}

	log.Info("Миграция базы магазина успешно завершена")
	return nil
}
