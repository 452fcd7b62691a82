package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uuid.UUID           `db:"id"`
	NameUz    string              `db:"name_uz"`
	NameRu    string              `db:"name_ru"`
	Price     decimal.Decimal     `db:"price"`
	Discount  decimal.NullDecimal `db:"discount"`
	Image     *string             `db:"image"`
	Category  string              `db:"category"`
	Available bool                `db:"available"`
	CreatedAt time.Time           `db:"created_at"`
	UpdatedAt time.Time           `db:"updated_at"`
}

// ProductInput carries the admin-editable fields of a product. Available is
// only applied on update, where nil keeps the current value; new products are
// always available.
type ProductInput struct {
	NameUz    string
	NameRu    string
	Price     decimal.Decimal
	Discount  decimal.NullDecimal
	Image     *string
	Category  string
	Available *bool
}

type Order struct {
	ID              uuid.UUID       `db:"id"`
	DeliveryAddress string          `db:"delivery_address"`
	PaymentMethod   string          `db:"payment_method"`
	PhoneNumber     string          `db:"phone_number"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	Items           []OrderItem     `db:"-"`
}

// OrderItem keeps the price, discount and product names as they were when the
// order was placed. ProductID becomes invalid once the product is deleted.
type OrderItem struct {
	ID            int64               `db:"id"`
	OrderID       uuid.UUID           `db:"order_id"`
	ProductID     uuid.NullUUID       `db:"product_id"`
	ProductNameUz string              `db:"product_name_uz"`
	ProductNameRu string              `db:"product_name_ru"`
	Quantity      int                 `db:"quantity"`
	Price         decimal.Decimal     `db:"price"`
	Discount      decimal.NullDecimal `db:"discount"`
	CreatedAt     time.Time           `db:"created_at"`
}

type AdminUser struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// OrderStatusPending is the only status an order ever has; nothing in the
// storefront moves orders forward.
const OrderStatusPending = "pending"
