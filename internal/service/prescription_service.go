package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
	"github.com/medcare-africa/medcare-api/pkg/metrics"
)

type PrescriptionService struct {
	repo     prescription.Repository
	users    user.Repository
	auditSvc *AuditService
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewPrescriptionService(
	repo prescription.Repository,
	users user.Repository,
	auditSvc *AuditService,
	m *metrics.Collector,
	log *zap.Logger,
) *PrescriptionService {
	return &PrescriptionService{repo: repo, users: users, auditSvc: auditSvc, metrics: m, log: log}
}

// Issue creates a prescription dated today with status "active". The
// medication list is stored verbatim; dosage and frequency strings are not
// interpreted. Prescriptions are immutable once created.
func (s *PrescriptionService) Issue(ctx context.Context, cmd *prescription.CreatePrescriptionCommand) (*prescription.Prescription, error) {
	patient, err := s.users.GetByID(ctx, cmd.PatientID)
	if err != nil {
		return nil, prescription.ErrInvalidParticipants
	}
	doctor, err := s.users.GetByID(ctx, cmd.DoctorID)
	if err != nil {
		return nil, prescription.ErrInvalidParticipants
	}

	p := &prescription.Prescription{
		PatientID:   cmd.PatientID,
		DoctorID:    cmd.DoctorID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Date:        domain.Today(),
		Medications: cmd.Medications,
		Diagnosis:   cmd.Diagnosis,
		Status:      prescription.StatusActive,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create prescription", zap.Error(err))
		return nil, fmt.Errorf("creating prescription: %w", err)
	}

	s.metrics.PrescriptionsIssued.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "prescription",
		ResourceID:   strconv.Itoa(p.ID),
	})

	return p, nil
}

func (s *PrescriptionService) List(ctx context.Context, q *prescription.ListQuery) ([]*prescription.Prescription, error) {
	return s.repo.List(ctx, q)
}
