package service

import (
	"context"
	"errors"
	"testing"

	"github.com/medcare-africa/medcare-api/internal/domain/notification"
)

func TestNotificationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	notes, err := env.notifications.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Appointment Reminder" {
		t.Fatalf("seeded notifications for user 3 = %+v", notes)
	}

	if err := env.notifications.MarkRead(ctx, notes[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	notes, _ = env.notifications.List(ctx, 3)
	if !notes[0].Read {
		t.Error("notification not marked read")
	}

	if err := env.notifications.Delete(ctx, notes[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	notes, _ = env.notifications.List(ctx, 3)
	if len(notes) != 0 {
		t.Errorf("notifications after delete = %d, want 0", len(notes))
	}
}

func TestNotificationNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.notifications.MarkRead(ctx, 99); !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Errorf("MarkRead error = %v, want ErrNotificationNotFound", err)
	}
	if err := env.notifications.Delete(ctx, 99); !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Errorf("Delete error = %v, want ErrNotificationNotFound", err)
	}
}
