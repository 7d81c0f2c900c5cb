package worker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farm2home/farm2home-backend/internal/application"
	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

type stubStore struct {
	prefs         []*entity.UserPreferences
	carts         []*entity.CartMetadata
	events        []*entity.AnalyticsEvent
	notifications []*entity.Notification
	decrements    []entity.StockDecrement
	failStock     bool
}

func (s *stubStore) CreatePreferences(_ context.Context, p *entity.UserPreferences) error {
	s.prefs = append(s.prefs, p)
	return nil
}

func (s *stubStore) CreateCartMetadata(_ context.Context, m *entity.CartMetadata) error {
	s.carts = append(s.carts, m)
	return nil
}

func (s *stubStore) Append(_ context.Context, ev *entity.AnalyticsEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func (s *stubStore) Create(_ context.Context, n *entity.Notification) error {
	n.ID = "n1"
	n.CreatedAt = time.Now()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *stubStore) DeleteOlderThan(context.Context, time.Time, int) (int64, error) {
	deleted := int64(len(s.notifications))
	s.notifications = nil
	return deleted, nil
}

func (s *stubStore) DecrementStock(_ context.Context, decs []entity.StockDecrement) error {
	if s.failStock {
		return errors.New("store unavailable")
	}
	s.decrements = append(s.decrements, decs...)
	return nil
}

func newDispatcher(store *stubStore) *Dispatcher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	notifications := application.NewNotificationService(store, nil, false, logger)
	bootstrap := application.NewBootstrapService(store, store, nil, "", logger)
	fulfillment := application.NewFulfillmentService(store, notifications, logger)
	return NewDispatcher(bootstrap, fulfillment, logger)
}

func TestHandleUserCreated(t *testing.T) {
	store := &stubStore{}
	d := newDispatcher(store)

	res := d.HandleUserCreated(context.Background(),
		[]byte(`{"userId":"u1","user":{"email":"anna@example.com","displayName":"Anna"}}`))

	assert.True(t, res.Success)
	require.Len(t, store.prefs, 1)
	assert.Equal(t, "u1", store.prefs[0].UserID)
	require.Len(t, store.carts, 1)
	require.Len(t, store.events, 1)
	assert.Equal(t, "user_created", store.events[0].Event)
}

// A malformed message is reported in the result, never propagated: the host
// acks and moves on.
func TestHandleUserCreatedBadPayload(t *testing.T) {
	store := &stubStore{}
	d := newDispatcher(store)

	res := d.HandleUserCreated(context.Background(), []byte(`{not json`))

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, store.prefs)
}

func TestHandleOrderCreated(t *testing.T) {
	store := &stubStore{}
	d := newDispatcher(store)

	res := d.HandleOrderCreated(context.Background(),
		[]byte(`{"orderId":"o1","order":{"userId":"u1","items":[{"productId":"p1","quantity":3}],"total":9.99}}`))

	assert.True(t, res.Success)
	require.Len(t, store.decrements, 1)
	assert.Equal(t, entity.StockDecrement{ProductID: "p1", Quantity: 3}, store.decrements[0])
	require.Len(t, store.notifications, 1)
	assert.Equal(t, entity.NotificationTypeOrderConfirmed, store.notifications[0].Type)
}

func TestHandleOrderCreatedStockFailure(t *testing.T) {
	store := &stubStore{failStock: true}
	d := newDispatcher(store)

	res := d.HandleOrderCreated(context.Background(),
		[]byte(`{"orderId":"o1","order":{"userId":"u1","items":[{"productId":"p1","quantity":3}],"total":9.99}}`))

	assert.False(t, res.Success)
	assert.Empty(t, store.notifications, "no confirmation when the stock commit fails")
}

func TestRunCleanup(t *testing.T) {
	store := &stubStore{notifications: []*entity.Notification{{}, {}, {}}}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := application.NewCleanupService(store, logger)

	res := RunCleanup(context.Background(), svc, logger)

	assert.True(t, res.Success)
	assert.EqualValues(t, 3, res.DeletedCount)
}
