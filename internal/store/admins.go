package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/models"
)

func GetAdminByUsername(ctx context.Context, db sqlx.QueryerContext, username string) (*models.AdminUser, error) {
	admin := &models.AdminUser{}

	err := sqlx.GetContext(ctx, db, admin,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`,
		username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}

	return admin, nil
}

// CreateAdminIfMissing inserts the credential unless the username already
// exists. It reports whether a row was created.
func CreateAdminIfMissing(ctx context.Context, db sqlx.ExecerContext, username, passwordHash string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO admin_users (username, password_hash, created_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash)
	if err != nil {
		return false, fmt.Errorf("create admin user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func UpdateAdminPassword(ctx context.Context, db sqlx.ExecerContext, username, passwordHash string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE admin_users SET password_hash = $2 WHERE username = $1`,
		username, passwordHash)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return database.ErrAdminNotFound
	}

	return nil
}
