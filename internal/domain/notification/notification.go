package notification

import "time"

const (
	TypeInfo     = "info"
	TypeReminder = "reminder"
)

// Notification is addressed to a single user. Notifications are created only
// as a side effect of appointment creation; there is no generic send
// operation.
type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
