package db

import (
	"context"
	"fmt"

	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/logger"
)

// AutoMigrate creates the schema when tables are absent. It is idempotent and
// runs once at startup; there is no versioned migration history.
func (c *Client) AutoMigrate(ctx context.Context, logg *logger.Logger) error {
	err := c.conn.WithContext(ctx).AutoMigrate(
		&models.Account{},
		&models.Warning{},
		&models.Shift{},
		&models.Order{},
		&models.SalaryPayment{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	if logg != nil {
		logg.Info(ctx, "schema ensured")
	}
	return nil
}
