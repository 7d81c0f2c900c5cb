package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
)

func TestBootstrapCreatesDefaultRecords(t *testing.T) {
	setup := &memUserSetupRepo{}
	analytics := &memAnalyticsRepo{}
	svc := NewBootstrapService(setup, analytics, nil, "", testLogger())

	err := svc.Run(context.Background(), "u1", entity.UserSnapshot{Email: "anna@example.com", DisplayName: "Anna"})
	require.NoError(t, err)

	require.Len(t, setup.preferences, 1)
	prefs := setup.preferences[0]
	assert.Equal(t, "u1", prefs.UserID)
	assert.Equal(t, "light", prefs.Theme)
	assert.True(t, prefs.Notifications)
	assert.Equal(t, "en", prefs.Language)

	require.Len(t, setup.carts, 1)
	cart := setup.carts[0]
	assert.Equal(t, "u1", cart.UserID)
	assert.Zero(t, cart.ItemCount)
	assert.Zero(t, cart.TotalPrice)

	require.Len(t, analytics.events, 1)
	ev := analytics.events[0]
	assert.Equal(t, "user_created", ev.Event)
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, "anna@example.com", ev.Email)
}

// The three writes are independent: a failure stops the sequence and leaves
// the earlier writes in place.
func TestBootstrapStopsAtFirstFailure(t *testing.T) {
	setup := &memUserSetupRepo{failCart: true}
	analytics := &memAnalyticsRepo{}
	svc := NewBootstrapService(setup, analytics, nil, "", testLogger())

	err := svc.Run(context.Background(), "u1", entity.UserSnapshot{Email: "anna@example.com"})
	require.Error(t, err)

	assert.Len(t, setup.preferences, 1)
	assert.Empty(t, setup.carts)
	assert.Empty(t, analytics.events)
}

func TestBootstrapPreferencesFailureWritesNothingElse(t *testing.T) {
	setup := &memUserSetupRepo{failPrefs: true}
	analytics := &memAnalyticsRepo{}
	svc := NewBootstrapService(setup, analytics, nil, "", testLogger())

	err := svc.Run(context.Background(), "u1", entity.UserSnapshot{})
	require.Error(t, err)

	assert.Empty(t, setup.preferences)
	assert.Empty(t, setup.carts)
	assert.Empty(t, analytics.events)
}
