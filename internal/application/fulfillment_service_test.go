package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

func newFulfillment(products *memProductRepo, notifications *memNotificationRepo) *FulfillmentService {
	notifSvc := NewNotificationService(notifications, nil, false, testLogger())
	return NewFulfillmentService(products, notifSvc, testLogger())
}

func TestFulfillmentDecrementsStockAndNotifies(t *testing.T) {
	products := newMemProductRepo(map[string]int{"p1": 10})
	notifications := &memNotificationRepo{}
	svc := newFulfillment(products, notifications)

	order := entity.OrderSnapshot{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "p1", Quantity: 3}},
		Total:  12.50,
	}
	require.NoError(t, svc.Run(context.Background(), "o1", order))

	assert.Equal(t, 7, products.stock["p1"])

	stored := notifications.all()
	require.Len(t, stored, 1)
	n := stored[0]
	assert.Equal(t, entity.NotificationTypeOrderConfirmed, n.Type)
	assert.Equal(t, "o1", n.OrderID)
	assert.Contains(t, n.Message, "#o1")
	assert.Equal(t, 1, n.Data["itemCount"])
}

// No availability check precedes the decrement: overselling drives stock
// negative and fulfillment still succeeds.
func TestFulfillmentAllowsNegativeStock(t *testing.T) {
	products := newMemProductRepo(map[string]int{"p1": 2})
	notifications := &memNotificationRepo{}
	svc := newFulfillment(products, notifications)

	order := entity.OrderSnapshot{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "p1", Quantity: 5}},
		Total:  25,
	}
	require.NoError(t, svc.Run(context.Background(), "o2", order))

	assert.Equal(t, -3, products.stock["p1"])
	assert.Len(t, notifications.all(), 1)
}

// The notification only happens after the stock commit succeeds.
func TestFulfillmentStockFailureSkipsNotification(t *testing.T) {
	products := newMemProductRepo(map[string]int{"p1": 10})
	products.fail = true
	notifications := &memNotificationRepo{}
	svc := newFulfillment(products, notifications)

	order := entity.OrderSnapshot{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "p1", Quantity: 1}},
		Total:  5,
	}
	err := svc.Run(context.Background(), "o3", order)
	require.Error(t, err)

	assert.Equal(t, 10, products.stock["p1"])
	assert.Empty(t, notifications.all())
}

func TestFulfillmentEmptyOrderStillNotifies(t *testing.T) {
	products := newMemProductRepo(nil)
	notifications := &memNotificationRepo{}
	svc := newFulfillment(products, notifications)

	order := entity.OrderSnapshot{UserID: "u1", Items: nil, Total: 0}
	require.NoError(t, svc.Run(context.Background(), "o4", order))

	assert.Empty(t, products.batches)
	stored := notifications.all()
	require.Len(t, stored, 1)
	assert.Equal(t, 0, stored[0].Data["itemCount"])
}
