package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/application"
	"github.com/farm2home/farm2home-backend/pkg/response"
	"github.com/farm2home/farm2home-backend/pkg/validation"
)

// NotificationHandler serves the welcome-notification callable.
type NotificationHandler struct {
	Svc    *application.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *application.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

type sendWelcomeRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	UserName string `json:"userName" binding:"required"`
}

func (h *NotificationHandler) SendWelcomeMessage(c *gin.Context) {
	var req sendWelcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "userId, email, and userName are required", validation.ToDetails(err))
		return
	}

	h.Logger.WithField("user_id", req.UserID).Info("sendWelcomeMessage called")

	if _, err := h.Svc.SendWelcome(c.Request.Context(), req.UserID, req.Email, req.UserName); err != nil {
		h.Logger.WithError(err).WithField("user_id", req.UserID).Error("sendWelcomeMessage failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "failed to send welcome message", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Welcome email prepared for %s", req.Email),
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}, "welcome message sent")
}
