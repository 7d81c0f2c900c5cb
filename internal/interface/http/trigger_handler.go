package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/worker"
	"github.com/farm2home/farm2home-backend/pkg/helpers"
	"github.com/farm2home/farm2home-backend/pkg/response"
	"github.com/farm2home/farm2home-backend/pkg/validation"
)

// TriggerHandler is the ingress for record-creation events. It publishes the
// new document snapshot onto the worker queues, standing in for the
// platform's onCreate delivery. Delivery is at-least-once.
type TriggerHandler struct {
	Pub        *helpers.RabbitPublisher
	UserQueue  string
	OrderQueue string
	Logger     *logrus.Logger
}

func NewTriggerHandler(pub *helpers.RabbitPublisher, userQueue, orderQueue string, logger *logrus.Logger) *TriggerHandler {
	return &TriggerHandler{Pub: pub, UserQueue: userQueue, OrderQueue: orderQueue, Logger: logger}
}

func (h *TriggerHandler) UserCreated(c *gin.Context) {
	var ev worker.UserCreatedEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "userId and user snapshot are required", validation.ToDetails(err))
		return
	}

	if err := h.Pub.PublishJSON(c.Request.Context(), h.UserQueue, ev); err != nil {
		h.Logger.WithError(err).WithField("user_id", ev.UserID).Error("publish user.created failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "failed to enqueue event", nil)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"queued": true}, "user.created queued")
}

func (h *TriggerHandler) OrderCreated(c *gin.Context) {
	var ev worker.OrderCreatedEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "orderId and order snapshot are required", validation.ToDetails(err))
		return
	}

	if err := h.Pub.PublishJSON(c.Request.Context(), h.OrderQueue, ev); err != nil {
		h.Logger.WithError(err).WithField("order_id", ev.OrderID).Error("publish order.created failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "failed to enqueue event", nil)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"queued": true}, "order.created queued")
}
