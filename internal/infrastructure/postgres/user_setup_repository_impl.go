package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

type UserSetupRepository struct {
	pool *pgxpool.Pool
}

func NewUserSetupRepository(pool *pgxpool.Pool) *UserSetupRepository {
	return &UserSetupRepository{pool: pool}
}

func (r *UserSetupRepository) CreatePreferences(ctx context.Context, p *entity.UserPreferences) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, theme, notifications, language)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, p.UserID, p.Theme, p.Notifications, p.Language)

	if err := row.Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert preferences for %s: %w", p.UserID, err)
	}
	return nil
}

func (r *UserSetupRepository) CreateCartMetadata(ctx context.Context, m *entity.CartMetadata) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cart_metadata (user_id, item_count, total_price)
		VALUES ($1, $2, $3)
		RETURNING last_updated
	`, m.UserID, m.ItemCount, m.TotalPrice)

	if err := row.Scan(&m.LastUpdated); err != nil {
		return fmt.Errorf("insert cart metadata for %s: %w", m.UserID, err)
	}
	return nil
}

var _ repository.UserSetupRepository = (*UserSetupRepository)(nil)
