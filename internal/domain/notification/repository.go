package notification

import "context"

type Repository interface {
	// Create persists a new notification, assigning it the next shared id
	// and stamping CreatedAt.
	Create(ctx context.Context, n *Notification) error

	// ListByUser returns the addressee's notifications, newest first.
	ListByUser(ctx context.Context, userID int) ([]*Notification, error)

	// MarkRead sets the read flag. Idempotent: re-marking an already-read
	// notification still succeeds.
	MarkRead(ctx context.Context, id int) error

	// Delete hard-removes a notification.
	Delete(ctx context.Context, id int) error
}
