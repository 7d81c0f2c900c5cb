package entity

import "time"

// Notification types written by this system. The store also holds other
// types (promotions etc.) produced elsewhere.
const (
	NotificationTypeWelcome        = "welcome"
	NotificationTypeOrderConfirmed = "order_confirmed"
)

// Notification is a per-user message record. It is append-only from this
// system's perspective: the read flag is flipped by the client apps, and old
// rows are removed in bulk by the retention sweep.
type Notification struct {
	ID        string
	UserID    string
	OrderID   string
	Type      string
	Email     string
	UserName  string
	Message   string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}
