package worker

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/application"
	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

// UserCreatedEvent is the message delivered when a user document appears.
type UserCreatedEvent struct {
	UserID string              `json:"userId" binding:"required"`
	User   entity.UserSnapshot `json:"user" binding:"required"`
}

// OrderCreatedEvent is the message delivered when an order document appears.
type OrderCreatedEvent struct {
	OrderID string               `json:"orderId" binding:"required"`
	Order   entity.OrderSnapshot `json:"order" binding:"required"`
}

// Result is what an event handler reports back. The host only logs it; a
// failed Result does not trigger a retry, so transient errors are absorbed.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(msg string) Result    { return Result{Success: true, Message: msg} }
func failed(err error) Result { return Result{Success: false, Error: err.Error()} }

// Dispatcher decodes queue messages and runs the matching event reaction.
// Every error path swallows: log, report in the Result, ack anyway.
type Dispatcher struct {
	Bootstrap   *application.BootstrapService
	Fulfillment *application.FulfillmentService
	Logger      *logrus.Logger
}

func NewDispatcher(bootstrap *application.BootstrapService, fulfillment *application.FulfillmentService, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Bootstrap: bootstrap, Fulfillment: fulfillment, Logger: logger}
}

func (d *Dispatcher) HandleUserCreated(ctx context.Context, body []byte) Result {
	var ev UserCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		d.Logger.WithError(err).Error("bad user.created message")
		return failed(err)
	}

	d.Logger.WithField("user_id", ev.UserID).Info("onUserCreated triggered")

	if err := d.Bootstrap.Run(ctx, ev.UserID, ev.User); err != nil {
		d.Logger.WithError(err).WithField("user_id", ev.UserID).Error("user bootstrap failed")
		return failed(err)
	}
	return ok("user " + ev.UserID + " initialized")
}

func (d *Dispatcher) HandleOrderCreated(ctx context.Context, body []byte) Result {
	var ev OrderCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		d.Logger.WithError(err).Error("bad order.created message")
		return failed(err)
	}

	d.Logger.WithField("order_id", ev.OrderID).Info("onOrderCreated triggered")

	if err := d.Fulfillment.Run(ctx, ev.OrderID, ev.Order); err != nil {
		d.Logger.WithError(err).WithField("order_id", ev.OrderID).Error("order fulfillment failed")
		return failed(err)
	}
	return ok("order " + ev.OrderID + " processed")
}

// CleanupResult is the schedule trigger's report, also consumed only by
// logging. A failed sweep never stops the schedule.
type CleanupResult struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deletedCount"`
	Error        string `json:"error,omitempty"`
}

// RunCleanup executes one retention sweep.
func RunCleanup(ctx context.Context, svc *application.CleanupService, logger *logrus.Logger) CleanupResult {
	deleted, err := svc.Run(ctx)
	if err != nil {
		logger.WithError(err).Error("notification cleanup failed")
		return CleanupResult{Success: false, Error: err.Error()}
	}
	return CleanupResult{Success: true, DeletedCount: deleted}
}
