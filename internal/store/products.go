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
)

const productColumns = `id, name_uz, name_ru, price, discount, image, category, available, created_at, updated_at`

func CreateProduct(ctx context.Context, db sqlx.QueryerContext, in models.ProductInput) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (id, name_uz, name_ru, price, discount, image, category, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		RETURNING ` + productColumns

	err := sqlx.GetContext(ctx, db, product, query,
		uuid.New(), in.NameUz, in.NameRu, in.Price, pricing.NormalizeDiscount(in.Discount), in.Image, in.Category)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, db sqlx.QueryerContext, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	if err := sqlx.GetContext(ctx, db, product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func UpdateProduct(ctx context.Context, db sqlx.QueryerContext, id uuid.UUID, in models.ProductInput) (*models.Product, error) {
	product := &models.Product{}

	query := `
		UPDATE products
		SET name_uz = $2, name_ru = $3, price = $4, discount = $5, image = $6,
		    category = $7, available = COALESCE($8, available), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	err := sqlx.GetContext(ctx, db, product, query,
		id, in.NameUz, in.NameRu, in.Price, pricing.NormalizeDiscount(in.Discount), in.Image, in.Category, in.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes the product row. Order items that reference it keep
// their snapshots; the foreign key nulls their product_id.
func DeleteProduct(ctx context.Context, db sqlx.ExecerContext, id uuid.UUID) error {
	result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return database.ErrProductNotFound
	}

	return nil
}

// ListAvailableProducts returns the storefront catalog, newest first.
func ListAvailableProducts(ctx context.Context, db sqlx.QueryerContext) ([]models.Product, error) {
	products := []models.Product{}

	query := `SELECT ` + productColumns + ` FROM products WHERE available ORDER BY created_at DESC, id DESC`

	if err := sqlx.SelectContext(ctx, db, &products, query); err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}

	return products, nil
}

// ListProducts returns every product including unavailable ones, newest first.
func ListProducts(ctx context.Context, db sqlx.QueryerContext) ([]models.Product, error) {
	products := []models.Product{}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`

	if err := sqlx.SelectContext(ctx, db, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func CountProducts(ctx context.Context, db sqlx.QueryerContext) (int64, error) {
	var total int64
	if err := sqlx.GetContext(ctx, db, &total, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// RenameCategory moves every product in category from to category to and
// returns how many rows changed.
func RenameCategory(ctx context.Context, db sqlx.ExecerContext, from, to string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE products SET category = $2, updated_at = NOW() WHERE category = $1`,
		from, to)
	if err != nil {
		return 0, fmt.Errorf("rename category %q: %w", from, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	return rowsAffected, nil
}
