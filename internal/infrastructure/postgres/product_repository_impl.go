package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// DecrementStock applies all decrements inside one transaction. There is no
// availability check: stock goes negative when an order oversells.
func (r *ProductRepository) DecrementStock(ctx context.Context, decs []entity.StockDecrement) error {
	if len(decs) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin stock update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, d := range decs {
		res, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $1 WHERE id = $2
		`, d.Quantity, d.ProductID)
		if err != nil {
			return fmt.Errorf("decrement stock for %s: %w", d.ProductID, err)
		}
		if res.RowsAffected() == 0 {
			return fmt.Errorf("decrement stock for %s: product not found", d.ProductID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit stock update: %w", err)
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
