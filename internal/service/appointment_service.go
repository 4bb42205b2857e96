package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/notification"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
	"github.com/medcare-africa/medcare-api/pkg/metrics"
)

type AppointmentService struct {
	repo          appointment.Repository
	users         user.Repository
	notifications notification.Repository
	auditSvc      *AuditService
	metrics       *metrics.Collector
	log           *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	users user.Repository,
	notifications notification.Repository,
	auditSvc *AuditService,
	m *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:          repo,
		users:         users,
		notifications: notifications,
		auditSvc:      auditSvc,
		metrics:       m,
		log:           log,
	}
}

// Schedule creates an appointment after verifying both participants exist,
// snapshots their names, and notifies each of them. Nothing is written when
// either participant is unknown.
func (s *AppointmentService) Schedule(ctx context.Context, cmd *appointment.CreateAppointmentCommand) (*appointment.Appointment, error) {
	patient, err := s.users.GetByID(ctx, cmd.PatientID)
	if err != nil {
		return nil, appointment.ErrInvalidParticipants
	}
	doctor, err := s.users.GetByID(ctx, cmd.DoctorID)
	if err != nil {
		return nil, appointment.ErrInvalidParticipants
	}

	a := &appointment.Appointment{
		PatientID:   cmd.PatientID,
		DoctorID:    cmd.DoctorID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Date:        cmd.Date,
		Time:        cmd.Time,
		Type:        cmd.Type,
		Status:      appointment.StatusScheduled,
		Notes:       cmd.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	// One notification per participant, always exactly two.
	patientNote := &notification.Notification{
		UserID:  a.PatientID,
		Title:   "Appointment Scheduled",
		Message: fmt.Sprintf("Your appointment with %s has been scheduled for %s at %s", doctor.Name, cmd.Date, cmd.Time),
		Type:    notification.TypeInfo,
	}
	doctorNote := &notification.Notification{
		UserID:  a.DoctorID,
		Title:   "New Appointment",
		Message: fmt.Sprintf("New appointment scheduled with %s on %s at %s", patient.Name, cmd.Date, cmd.Time),
		Type:    notification.TypeInfo,
	}
	for _, n := range []*notification.Notification{patientNote, doctorNote} {
		if err := s.notifications.Create(ctx, n); err != nil {
			return nil, fmt.Errorf("creating notification: %w", err)
		}
	}

	s.metrics.AppointmentsScheduled.Inc()
	s.metrics.NotificationsCreated.Add(2)
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "appointment",
		ResourceID:   strconv.Itoa(a.ID),
	})

	return a, nil
}

func (s *AppointmentService) List(ctx context.Context, q *appointment.ListQuery) ([]*appointment.Appointment, error) {
	return s.repo.List(ctx, q)
}

// Update merge-applies the supplied fields. Participant ids supplied here
// are not re-validated against the user collection.
func (s *AppointmentService) Update(ctx context.Context, id int, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	a, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "appointment",
		ResourceID:   strconv.Itoa(id),
	})

	return a, nil
}

// Cancel hard-removes the appointment. No audit trail survives in the data
// model; the async audit log line is the only trace.
func (s *AppointmentService) Cancel(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "appointment",
		ResourceID:   strconv.Itoa(id),
	})

	return nil
}
