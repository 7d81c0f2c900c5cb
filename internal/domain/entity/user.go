package entity

import "time"

// UserSnapshot is the user document as delivered by the creation event.
// Users themselves are created by the external auth system.
type UserSnapshot struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// UserPreferences holds per-user settings, written once with fixed defaults
// when the user is bootstrapped and owned by other services afterwards.
type UserPreferences struct {
	UserID        string
	Theme         string
	Notifications bool
	Language      string
	CreatedAt     time.Time
}

// DefaultPreferences returns the fixed defaults applied to every new user.
func DefaultPreferences(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		Language:      "en",
	}
}

// CartMetadata is the per-user cart summary, initialized empty at bootstrap
// and mutated by the cart service afterwards.
type CartMetadata struct {
	UserID      string
	ItemCount   int
	TotalPrice  float64
	LastUpdated time.Time
}
