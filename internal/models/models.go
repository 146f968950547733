package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer       Role = "ROLE_CUSTOMER"
	RoleProductManager Role = "ROLE_PRODUCT_MANAGER"
	RoleSupervisor     Role = "ROLE_SUPERVISOR"
	RoleOperator       Role = "ROLE_OPERATOR"
	RoleAdmin          Role = "ROLE_ADMIN"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username    string    `gorm:"type:text;not null"` // уникальность — функциональный индекс lower(username)
	Email       string    `gorm:"type:text"`
	PhoneNumber string    `gorm:"type:text"`
	Password    string    `gorm:"type:text;not null"` // hash
	Role        Role      `gorm:"type:text;not null;default:'ROLE_CUSTOMER';index"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	IsDeleted   bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string { return "users" }

type Category struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string     `gorm:"type:text;not null"` // уникальность — lower(name), см. миграцию
	ParentID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Subcategories []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"` // владелец-продавец
	Name       string    `gorm:"type:text;not null"`
	About      string    `gorm:"type:text"`
	PriceCents int64     `gorm:"not null"`           // CHECK > 0 в миграции
	Quantity   int64     `gorm:"not null;default:0"` // CHECK >= 0 в миграции
	IsActive   bool      `gorm:"not null;default:true;index"`
	IsDeleted  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Discount *Discount `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

type Discount struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"` // 1:1 с товаром
	Percentage int64     `gorm:"not null"`                       // CHECK 0..100 в миграции
	IsActive   bool      `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Discount) TableName() string { return "discounts" }

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalPriceCents int64     `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true;index"` // true = открытый заказ

	OrderDate time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_items_order_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_order_items_order_product"`
	Quantity   uint32    `gorm:"type:int;not null"` // CHECK > 0 в миграции
	PriceCents int64     `gorm:"not null"`          // сумма по строке, не цена за единицу

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderItem) TableName() string { return "order_items" }

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

const (
	CouponAmountMin = 1
	CouponAmountMax = 1_000_000
)

var ErrCouponAmountOutOfRange = errors.New("coupon amount must be in [1, 1000000]")

// RarityFor выводит редкость купона из номинала. Фиксированные диапазоны:
// [1,10] Common, (10,100] Uncommon, (100,1000] Rare, (1000,10000] Epic,
// (10000,1000000] Legendary.
func RarityFor(amount int64) Rarity {
	switch {
	case amount <= 10:
		return RarityCommon
	case amount <= 100:
		return RarityUncommon
	case amount <= 1000:
		return RarityRare
	case amount <= 10000:
		return RarityEpic
	default:
		return RarityLegendary
	}
}

type Coupon struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code     string    `gorm:"type:text;not null;uniqueIndex"`
	Amount   int64     `gorm:"not null"` // номинал в целых единицах валюты
	Rarity   Rarity    `gorm:"type:text;not null"`
	IsActive bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Coupon) TableName() string { return "coupons" }

// BeforeSave пересчитывает rarity при каждой записи: поле выводимое,
// снаружи его выставить нельзя.
func (c *Coupon) BeforeSave(_ *gorm.DB) error {
	if c.Amount < CouponAmountMin || c.Amount > CouponAmountMax {
		return ErrCouponAmountOutOfRange
	}
	c.Rarity = RarityFor(c.Amount)
	return nil
}

type Address struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Country  string    `gorm:"type:text;not null"`
	City     string    `gorm:"type:text;not null"`
	Street   string    `gorm:"type:text;not null"`
	Zipcode  string    `gorm:"type:text;not null"`
	IsActive bool      `gorm:"not null;default:false"` // максимум один активный адрес на пользователя

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Address) TableName() string { return "addresses" }

// Checkout — персистентная запись подтверждения заказа: связывает заказ,
// адрес и (опционально) купон. Создаётся активной и закрывается в той же
// транзакции после расчёта итога; жизненный цикл строго линейный.
type Checkout struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AddressID       uuid.UUID  `gorm:"type:uuid;not null"`
	CouponID        *uuid.UUID `gorm:"type:uuid"`
	TotalPriceCents int64      `gorm:"not null;default:0"`
	IsActive        bool       `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Checkout) TableName() string { return "checkouts" }

type Wishlist struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_wishlists_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_wishlists_user_product"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Wishlist) TableName() string { return "wishlists" }
