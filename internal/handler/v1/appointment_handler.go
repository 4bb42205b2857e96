package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
	log *zap.Logger
}

func NewAppointmentHandler(svc *service.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: log}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	q := &appointment.ListQuery{
		Role:   domain.Role(c.Query("role")),
		UserID: queryInt(c, "userId"),
	}

	appts, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"appointments": appts})
}

type createAppointmentRequest struct {
	PatientID looseID `json:"patientId"`
	DoctorID  looseID `json:"doctorId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.Schedule(c.Request.Context(), &appointment.CreateAppointmentCommand{
		PatientID: req.PatientID.Int(),
		DoctorID:  req.DoctorID.Int(),
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"appointment": a,
		"message":     "Appointment scheduled successfully",
	})
}

type updateAppointmentRequest struct {
	PatientID   *looseID `json:"patientId"`
	DoctorID    *looseID `json:"doctorId"`
	PatientName *string  `json:"patientName"`
	DoctorName  *string  `json:"doctorName"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

func (r *updateAppointmentRequest) toCommand() *appointment.UpdateAppointmentCommand {
	cmd := &appointment.UpdateAppointmentCommand{
		PatientName: r.PatientName,
		DoctorName:  r.DoctorName,
		Date:        r.Date,
		Time:        r.Time,
		Type:        r.Type,
		Status:      r.Status,
		Notes:       r.Notes,
	}
	if r.PatientID != nil {
		id := r.PatientID.Int()
		cmd.PatientID = &id
	}
	if r.DoctorID != nil {
		id := r.DoctorID.Int()
		cmd.DoctorID = &id
	}
	return cmd
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "Appointment not found")
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, req.toCommand())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"appointment": a,
		"message":     "Appointment updated successfully",
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "Appointment not found")
	if !ok {
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"message": "Appointment cancelled successfully"})
}
