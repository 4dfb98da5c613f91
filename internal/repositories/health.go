package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
)

// HealthRepository checks the Postgres pool.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository creates a new HealthRepository.
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping runs a trivial query through the pool.
func (r *HealthRepository) Ping(ctx context.Context) error {
	const query = `
		SELECT 1
	`

	var one int
	err := r.db.GetContext(ctx, &one, query)

	logger.Log.Infow("database ping",
		"query", strings.Join(strings.Fields(query), " "),
		"result", one,
		"error", err,
	)

	return err
}
