package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

func seedNotifications(repo *memNotificationRepo, count int, createdAt time.Time) {
	for i := 0; i < count; i++ {
		repo.notifications = append(repo.notifications, &entity.Notification{
			UserID:    "u1",
			Type:      entity.NotificationTypeWelcome,
			CreatedAt: createdAt,
		})
	}
}

func TestCleanupIsBoundedPerRun(t *testing.T) {
	repo := &memNotificationRepo{}
	now := time.Date(2026, 8, 1, 2, 0, 0, 0, time.UTC)
	seedNotifications(repo, 1500, now.Add(-31*24*time.Hour))
	seedNotifications(repo, 10, now.Add(-time.Hour))

	svc := NewCleanupService(repo, testLogger())
	svc.now = func() time.Time { return now }

	deleted, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, CleanupBatchLimit, deleted)
	assert.Len(t, repo.all(), 510)

	// the remainder is swept by the next run; recent rows stay
	deleted, err = svc.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 500, deleted)
	assert.Len(t, repo.all(), 10)
}

func TestCleanupNothingToDelete(t *testing.T) {
	repo := &memNotificationRepo{}
	now := time.Now()
	seedNotifications(repo, 5, now.Add(-time.Hour))

	svc := NewCleanupService(repo, testLogger())

	deleted, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Len(t, repo.all(), 5)
}

func TestCleanupKeepsRecordsInsideRetention(t *testing.T) {
	repo := &memNotificationRepo{}
	now := time.Date(2026, 8, 1, 2, 0, 0, 0, time.UTC)
	seedNotifications(repo, 3, now.Add(-29*24*time.Hour))
	seedNotifications(repo, 2, now.Add(-31*24*time.Hour))

	svc := NewCleanupService(repo, testLogger())
	svc.now = func() time.Time { return now }

	deleted, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
	assert.Len(t, repo.all(), 3)
}

func TestCleanupReportsStoreFailure(t *testing.T) {
	repo := &memNotificationRepo{failDelete: true}
	svc := NewCleanupService(repo, testLogger())

	_, err := svc.Run(context.Background())
	require.Error(t, err)
}
