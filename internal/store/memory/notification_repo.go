package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medcare-africa/medcare-api/internal/domain/notification"
)

type notificationRepo struct {
	s *Store
}

func (r *notificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n.ID = r.s.nextID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	cp := *n
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID int) ([]*notification.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*notification.Notification, 0, len(r.s.notifications))
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			cp := *n
			result = append(result, &cp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, n := range r.s.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (r *notificationRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, n := range r.s.notifications {
		if n.ID == id {
			r.s.notifications = append(r.s.notifications[:i], r.s.notifications[i+1:]...)
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}
