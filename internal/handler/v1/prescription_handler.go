package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/service"
)

type PrescriptionHandler struct {
	svc *service.PrescriptionService
	log *zap.Logger
}

func NewPrescriptionHandler(svc *service.PrescriptionService, log *zap.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc, log: log}
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	q := &prescription.ListQuery{
		Role:   domain.Role(c.Query("role")),
		UserID: queryInt(c, "userId"),
	}

	scripts, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"prescriptions": scripts})
}

type createPrescriptionRequest struct {
	PatientID   looseID                   `json:"patientId"`
	DoctorID    looseID                   `json:"doctorId"`
	Medications []prescription.Medication `json:"medications"`
	Diagnosis   string                    `json:"diagnosis"`
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req createPrescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.Issue(c.Request.Context(), &prescription.CreatePrescriptionCommand{
		PatientID:   req.PatientID.Int(),
		DoctorID:    req.DoctorID.Int(),
		Medications: req.Medications,
		Diagnosis:   req.Diagnosis,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"prescription": p,
		"message":      "Prescription created successfully",
	})
}
