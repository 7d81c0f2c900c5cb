package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

// FulfillmentService reacts to order creation: it decrements stock for every
// ordered item in one atomic group, then writes the confirmation
// notification. The notification is outside the stock group, so a late
// failure can leave stock decremented without a notification; the reverse
// cannot happen because the notification is only attempted after the stock
// commit succeeds.
type FulfillmentService struct {
	Products      repository.ProductRepository
	Notifications *NotificationService
	Logger        *logrus.Logger
}

func NewFulfillmentService(products repository.ProductRepository, notifications *NotificationService, logger *logrus.Logger) *FulfillmentService {
	return &FulfillmentService{Products: products, Notifications: notifications, Logger: logger}
}

func (s *FulfillmentService) Run(ctx context.Context, orderID string, order entity.OrderSnapshot) error {
	decs := make([]entity.StockDecrement, 0, len(order.Items))
	for _, item := range order.Items {
		decs = append(decs, entity.StockDecrement{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.Products.DecrementStock(ctx, decs); err != nil {
		return fmt.Errorf("update stock for order %s: %w", orderID, err)
	}

	if _, err := s.Notifications.SendOrderConfirmed(ctx, orderID, order.UserID, order.Total, len(order.Items)); err != nil {
		return fmt.Errorf("notify order %s: %w", orderID, err)
	}

	s.Logger.WithFields(logrus.Fields{
		"order_id":   orderID,
		"user_id":    order.UserID,
		"item_count": len(order.Items),
	}).Info("order processing completed")
	return nil
}
