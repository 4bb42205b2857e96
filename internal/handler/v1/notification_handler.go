package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/service"
)

type NotificationHandler struct {
	svc *service.NotificationService
	log *zap.Logger
}

func NewNotificationHandler(svc *service.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: log}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notes, err := h.svc.List(c.Request.Context(), queryInt(c, "userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"notifications": notes})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "Notification not found")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "Notification not found")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"message": "Notification deleted successfully"})
}
