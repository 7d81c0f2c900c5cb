package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) Append(ctx context.Context, ev *entity.AnalyticsEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	var payload []byte
	if ev.Payload != nil {
		b, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("marshal analytics payload: %w", err)
		}
		payload = b
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO analytics_events (id, event, user_id, email, payload)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING created_at
	`, ev.ID, ev.Event, ev.UserID, ev.Email, payload)

	if err := row.Scan(&ev.CreatedAt); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)
