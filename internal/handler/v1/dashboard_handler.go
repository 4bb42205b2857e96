package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/service"
)

type DashboardHandler struct {
	svc *service.StatsService
	log *zap.Logger
}

func NewDashboardHandler(svc *service.StatsService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Dashboard(c.Request.Context(), domain.Role(c.Query("role")), queryInt(c, "userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"stats": stats})
}
