package repositories

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the parents and children tables when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Infow("schema applied")
	return nil
}
