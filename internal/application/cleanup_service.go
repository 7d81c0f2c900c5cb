package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

const (
	// NotificationRetention is how long notification records are kept.
	NotificationRetention = 30 * 24 * time.Hour
	// CleanupBatchLimit caps deletions per sweep; anything beyond the cap
	// waits for the next run.
	CleanupBatchLimit = 1000
)

// CleanupService prunes notifications past the retention window, bounded per
// run. There is no single-run completeness guarantee.
type CleanupService struct {
	Notifications repository.NotificationRepository
	Logger        *logrus.Logger

	now func() time.Time
}

func NewCleanupService(notifications repository.NotificationRepository, logger *logrus.Logger) *CleanupService {
	return &CleanupService{Notifications: notifications, Logger: logger, now: time.Now}
}

// Run deletes up to CleanupBatchLimit notifications older than the retention
// window and returns the number deleted.
func (s *CleanupService) Run(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-NotificationRetention)
	deleted, err := s.Notifications.DeleteOlderThan(ctx, cutoff, CleanupBatchLimit)
	if err != nil {
		return 0, err
	}
	s.Logger.WithFields(logrus.Fields{
		"deleted_count": deleted,
		"cutoff":        cutoff.UTC().Format(time.RFC3339),
	}).Info("notification cleanup completed")
	return deleted, nil
}
