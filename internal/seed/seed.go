// Package seed loads the default menu and admin credential into an empty
// database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/safar/go-food-store/internal/auth"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrEmptyPassword = errors.New("admin password is empty")

// Menu inserts DefaultMenu in one transaction when the catalog is empty and
// returns how many products were created.
func Menu(ctx context.Context, db *sqlx.DB, logger *zap.Logger) (int, error) {
	count, err := store.CountProducts(ctx, db)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Catalog already has products, skipping menu", zap.Int64("products", count))
		return 0, nil
	}

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sqlx.Tx) error {
		for _, item := range DefaultMenu {
			if _, err := store.CreateProduct(ctx, tx, item.input()); err != nil {
				return fmt.Errorf("seed %q: %w", item.NameUz, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Seeded default menu", zap.Int("products", len(DefaultMenu)))
	return len(DefaultMenu), nil
}

func (m MenuItem) input() models.ProductInput {
	in := models.ProductInput{
		NameUz:   m.NameUz,
		NameRu:   m.NameRu,
		Price:    decimal.NewFromInt(m.Price),
		Category: m.NameUz,
	}
	if m.Discount > 0 {
		in.Discount = decimal.NewNullDecimal(decimal.NewFromInt(m.Discount))
	}
	return in
}

// Recategorize moves products from their legacy categories into the menu
// sections and returns the number of rows changed.
func Recategorize(ctx context.Context, db sqlx.ExecerContext, logger *zap.Logger) (int64, error) {
	var total int64
	for _, m := range CategoryMapping {
		n, err := store.RenameCategory(ctx, db, m.From, m.To)
		if err != nil {
			return total, err
		}
		if n > 0 {
			logger.Info("Updated product categories",
				zap.String("from", m.From),
				zap.String("to", m.To),
				zap.Int64("count", n),
			)
		}
		total += n
	}
	return total, nil
}

// EnsureAdmin creates the admin credential unless one with that username
// already exists. The stored password is never overwritten here.
func EnsureAdmin(ctx context.Context, db sqlx.ExecerContext, username, password string, logger *zap.Logger) (bool, error) {
	if password == "" {
		return false, ErrEmptyPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	created, err := store.CreateAdminIfMissing(ctx, db, username, hash)
	if err != nil {
		return false, err
	}

	if created {
		logger.Info("Admin user created", zap.String("username", username))
	} else {
		logger.Info("Admin user already exists", zap.String("username", username))
	}
	return created, nil
}

func ResetAdminPassword(ctx context.Context, db sqlx.ExecerContext, username, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return store.UpdateAdminPassword(ctx, db, username, hash)
}
