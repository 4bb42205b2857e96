package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain/notification"
)

type NotificationService struct {
	repo     notification.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewNotificationService(repo notification.Repository, auditSvc *AuditService, log *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, auditSvc: auditSvc, log: log}
}

// List returns the addressee's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID int) ([]*notification.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "notification",
		ResourceID:   strconv.Itoa(id),
	})

	return nil
}
