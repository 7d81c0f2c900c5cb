package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

var errStoreDown = errors.New("store unavailable")

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// memNotificationRepo is an in-memory NotificationRepository honoring the
// same bounded-delete contract as the Postgres implementation.
type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	failCreate    bool
	failDelete    bool
	nextID        int
}

func (r *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errStoreDown
	}
	r.nextID++
	if n.ID == "" {
		n.ID = fmt.Sprintf("n-%d", r.nextID)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	stored := *n
	r.notifications = append(r.notifications, &stored)
	return nil
}

func (r *memNotificationRepo) DeleteOlderThan(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDelete {
		return 0, errStoreDown
	}
	sort.Slice(r.notifications, func(i, j int) bool {
		return r.notifications[i].CreatedAt.Before(r.notifications[j].CreatedAt)
	})
	var kept []*entity.Notification
	var deleted int64
	for _, n := range r.notifications {
		if deleted < int64(limit) && n.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return deleted, nil
}

func (r *memNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

type memUserSetupRepo struct {
	mu          sync.Mutex
	preferences []*entity.UserPreferences
	carts       []*entity.CartMetadata
	failPrefs   bool
	failCart    bool
}

func (r *memUserSetupRepo) CreatePreferences(_ context.Context, p *entity.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failPrefs {
		return errStoreDown
	}
	p.CreatedAt = time.Now()
	stored := *p
	r.preferences = append(r.preferences, &stored)
	return nil
}

func (r *memUserSetupRepo) CreateCartMetadata(_ context.Context, m *entity.CartMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCart {
		return errStoreDown
	}
	m.LastUpdated = time.Now()
	stored := *m
	r.carts = append(r.carts, &stored)
	return nil
}

type memAnalyticsRepo struct {
	mu     sync.Mutex
	events []*entity.AnalyticsEvent
	fail   bool
}

func (r *memAnalyticsRepo) Append(_ context.Context, ev *entity.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStoreDown
	}
	ev.CreatedAt = time.Now()
	stored := *ev
	r.events = append(r.events, &stored)
	return nil
}

type memProductRepo struct {
	mu      sync.Mutex
	stock   map[string]int
	batches [][]entity.StockDecrement
	fail    bool
}

func newMemProductRepo(stock map[string]int) *memProductRepo {
	if stock == nil {
		stock = map[string]int{}
	}
	return &memProductRepo{stock: stock}
}

func (r *memProductRepo) DecrementStock(_ context.Context, decs []entity.StockDecrement) error {
	if len(decs) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStoreDown
	}
	// all-or-nothing, like the single-transaction implementation
	for _, d := range decs {
		if _, okP := r.stock[d.ProductID]; !okP {
			return errors.New("product not found: " + d.ProductID)
		}
	}
	for _, d := range decs {
		r.stock[d.ProductID] -= d.Quantity
	}
	r.batches = append(r.batches, decs)
	return nil
}
