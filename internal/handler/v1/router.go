package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	System        *SystemHandler
	Auth          *AuthHandler
	Appointments  *AppointmentHandler
	Prescriptions *PrescriptionHandler
	Users         *UserHandler
	Dashboard     *DashboardHandler
	Notifications *NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.System.Health)

	api := r.Group("/api")
	{
		api.GET("", h.System.Index)

		api.POST("/auth/login", h.Auth.Login)

		api.GET("/appointments", h.Appointments.List)
		api.POST("/appointments", h.Appointments.Create)
		api.PUT("/appointments/:id", h.Appointments.Update)
		api.DELETE("/appointments/:id", h.Appointments.Delete)

		api.GET("/prescriptions", h.Prescriptions.List)
		api.POST("/prescriptions", h.Prescriptions.Create)

		api.GET("/users", h.Users.List)
		api.GET("/users/:id", h.Users.Get)
		api.PUT("/users/:id", h.Users.Update)

		api.GET("/dashboard/stats", h.Dashboard.Stats)

		api.GET("/notifications", h.Notifications.List)
		api.PATCH("/notifications/:id/read", h.Notifications.MarkRead)
		api.DELETE("/notifications/:id", h.Notifications.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})
}
