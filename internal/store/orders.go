package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/pricing"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is an order as submitted by the storefront. Prices and
// the total are taken as given; they are not recomputed from the catalog.
type CreateOrderRequest struct {
	DeliveryAddress string
	PaymentMethod   string
	PhoneNumber     string
	TotalPrice      decimal.Decimal
	Items           []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	Discount  decimal.NullDecimal
}

const (
	orderColumns     = `id, delivery_address, payment_method, phone_number, total_price, status, created_at`
	orderItemColumns = `id, order_id, product_id, product_name_uz, product_name_ru, quantity, price, discount, created_at`
)

// CreateOrder stores the order and its items in one transaction. Each item
// snapshots the product names alongside the submitted price and discount.
func CreateOrder(ctx context.Context, db *sqlx.DB, req CreateOrderRequest) (*models.Order, error) {
	var order *models.Order

	err := database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *sqlx.Tx) error {
		created := &models.Order{}
		err := sqlx.GetContext(ctx, tx, created,
			`INSERT INTO orders (id, delivery_address, payment_method, phone_number, total_price, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, NOW())
			 RETURNING `+orderColumns,
			uuid.New(), req.DeliveryAddress, req.PaymentMethod, req.PhoneNumber, req.TotalPrice, models.OrderStatusPending)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		created.Items = make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			product, err := GetProduct(ctx, tx, item.ProductID)
			if err != nil {
				return fmt.Errorf("load product %s: %w", item.ProductID, err)
			}

			var orderItem models.OrderItem
			err = sqlx.GetContext(ctx, tx, &orderItem,
				`INSERT INTO order_items (order_id, product_id, product_name_uz, product_name_ru, quantity, price, discount, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
				 RETURNING `+orderItemColumns,
				created.ID, product.ID, product.NameUz, product.NameRu, item.Quantity, item.Price, pricing.NormalizeDiscount(item.Discount))
			if err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			created.Items = append(created.Items, orderItem)
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func GetOrder(ctx context.Context, db sqlx.QueryerContext, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}

	err := sqlx.GetContext(ctx, db, order, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items := []models.OrderItem{}
	err = sqlx.SelectContext(ctx, db, &items,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	order.Items = items

	return order, nil
}

// ListOrdersCursor pages through orders newest first using a keyset cursor
// on (created_at, id). Items are not loaded.
func ListOrdersCursor(ctx context.Context, db sqlx.QueryerContext, cursor string, limit int) (*CursorPage[models.Order], error) {
	cursorData, err := DecodeCursor(cursor)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}

	orders := []models.Order{}
	if cursorData == nil {
		err = sqlx.SelectContext(ctx, db, &orders,
			`SELECT `+orderColumns+`
			 FROM orders
			 ORDER BY created_at DESC, id DESC
			 LIMIT $1`,
			limit+1)
	} else {
		err = sqlx.SelectContext(ctx, db, &orders,
			`SELECT `+orderColumns+`
			 FROM orders
			 WHERE (created_at, id) < ($1, $2)
			 ORDER BY created_at DESC, id DESC
			 LIMIT $3`,
			cursorData.CreatedAt, cursorData.ID, limit+1)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	hasMore := len(orders) > limit
	if hasMore {
		orders = orders[:limit]
	}

	var nextCursor string
	if hasMore && len(orders) > 0 {
		last := orders[len(orders)-1]
		nextCursor = EncodeCursor(OrderCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	return &CursorPage[models.Order]{
		Items:      orders,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}
