package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	version string
}

func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version}
}

// Health reports liveness. It does not carry the success envelope; probes
// and load balancers read the status field directly.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "MedCare Backend API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

// Index lists the API surface for anyone poking at the root path.
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to MedCare API",
		"version": h.version,
		"endpoints": gin.H{
			"health":        "/health",
			"auth":          "/api/auth",
			"users":         "/api/users",
			"appointments":  "/api/appointments",
			"prescriptions": "/api/prescriptions",
		},
	})
}
