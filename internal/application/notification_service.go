package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
	"github.com/farm2home/farm2home-backend/pkg/mailer"
)

// NotificationService writes user-facing notification records. Sends are
// intentionally not deduplicated: calling SendWelcome twice stores two rows.
type NotificationService struct {
	Repo        repository.NotificationRepository
	Mailer      *mailer.Mailgun
	MailEnabled bool
	Logger      *logrus.Logger
}

func NewNotificationService(repo repository.NotificationRepository, mg *mailer.Mailgun, mailEnabled bool, logger *logrus.Logger) *NotificationService {
	return &NotificationService{Repo: repo, Mailer: mg, MailEnabled: mailEnabled, Logger: logger}
}

// SendWelcome stores a welcome notification for a new user and, when real
// mail is enabled, sends it via Mailgun. A mail failure is logged but does
// not fail the call; the notification row is the source of truth.
func (s *NotificationService) SendWelcome(ctx context.Context, userID, email, userName string) (*entity.Notification, error) {
	n := &entity.Notification{
		UserID:   userID,
		Type:     entity.NotificationTypeWelcome,
		Email:    email,
		UserName: userName,
		Message:  fmt.Sprintf("Welcome to Farm2Home, %s! We're excited to have you.", userName),
		Read:     false,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create welcome notification: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"email":     email,
		"user_name": userName,
	}).Info("welcome notification created")

	if s.MailEnabled && s.Mailer != nil {
		if err := s.Mailer.Send(ctx, email, "Welcome to Farm2Home", n.Message); err != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("welcome email send failed")
		}
	}
	return n, nil
}

// SendOrderConfirmed stores the confirmation notification for a fulfilled
// order, referencing the order id and carrying the order summary.
func (s *NotificationService) SendOrderConfirmed(ctx context.Context, orderID, userID string, total float64, itemCount int) (*entity.Notification, error) {
	n := &entity.Notification{
		UserID:  userID,
		OrderID: orderID,
		Type:    entity.NotificationTypeOrderConfirmed,
		Message: fmt.Sprintf("Your order #%s has been confirmed", orderID),
		Data: map[string]any{
			"total":     total,
			"itemCount": itemCount,
		},
		Read: false,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create order notification: %w", err)
	}
	return n, nil
}
