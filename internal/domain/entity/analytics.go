package entity

import "time"

// AnalyticsEvent is an append-only audit record.
type AnalyticsEvent struct {
	ID        string
	Event     string
	UserID    string
	Email     string
	Payload   map[string]any
	CreatedAt time.Time
}
