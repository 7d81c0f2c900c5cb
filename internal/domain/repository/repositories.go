package repository

import (
	"context"
	"time"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

// NotificationRepository writes and prunes notification records.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// DeleteOlderThan removes at most limit notifications created before
	// cutoff in a single atomic statement and returns the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// ProductRepository mutates product stock.
type ProductRepository interface {
	// DecrementStock applies all decrements in one atomic group: either
	// every product is adjusted or none is. No availability check is made,
	// so stock may go negative.
	DecrementStock(ctx context.Context, decs []entity.StockDecrement) error
}

// UserSetupRepository writes the per-user documents created at bootstrap.
type UserSetupRepository interface {
	CreatePreferences(ctx context.Context, p *entity.UserPreferences) error
	CreateCartMetadata(ctx context.Context, m *entity.CartMetadata) error
}

// AnalyticsRepository appends audit events.
type AnalyticsRepository interface {
	Append(ctx context.Context, ev *entity.AnalyticsEvent) error
}
