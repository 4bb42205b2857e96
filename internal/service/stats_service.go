package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

type StatsService struct {
	users         user.Repository
	appointments  appointment.Repository
	prescriptions prescription.Repository
	log           *zap.Logger
}

func NewStatsService(
	users user.Repository,
	appointments appointment.Repository,
	prescriptions prescription.Repository,
	log *zap.Logger,
) *StatsService {
	return &StatsService{users: users, appointments: appointments, prescriptions: prescriptions, log: log}
}

// Dashboard computes the role-shaped stats object. Each role gets its own
// set of keys; an unrecognized role gets an empty object rather than an
// error. All counts are recomputed from the live collections on every call.
func (s *StatsService) Dashboard(ctx context.Context, role domain.Role, userID int) (map[string]any, error) {
	switch role {
	case domain.RoleAdmin:
		return s.adminStats(ctx)
	case domain.RoleDoctor:
		return s.doctorStats(ctx, userID)
	case domain.RolePatient:
		return s.patientStats(ctx, userID)
	default:
		return map[string]any{}, nil
	}
}

func (s *StatsService) adminStats(ctx context.Context) (map[string]any, error) {
	users, err := s.users.List(ctx, "")
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.List(ctx, &appointment.ListQuery{})
	if err != nil {
		return nil, err
	}
	scripts, err := s.prescriptions.List(ctx, &prescription.ListQuery{})
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	doctors, patients := 0, 0
	for _, u := range users {
		switch u.Role {
		case domain.RoleDoctor:
			doctors++
		case domain.RolePatient:
			patients++
		}
	}
	todayAppts := 0
	for _, a := range appts {
		if a.IsOn(today) {
			todayAppts++
		}
	}
	active := 0
	for _, p := range scripts {
		if p.Status == prescription.StatusActive {
			active++
		}
	}

	return map[string]any{
		"totalUsers":          len(users),
		"totalDoctors":        doctors,
		"totalPatients":       patients,
		"totalAppointments":   len(appts),
		"todayAppointments":   todayAppts,
		"activePrescriptions": active,
		"systemHealth":        "Good",
	}, nil
}

func (s *StatsService) doctorStats(ctx context.Context, userID int) (map[string]any, error) {
	appts, err := s.appointments.List(ctx, &appointment.ListQuery{Role: domain.RoleDoctor, UserID: userID})
	if err != nil {
		return nil, err
	}
	scripts, err := s.prescriptions.List(ctx, &prescription.ListQuery{Role: domain.RoleDoctor, UserID: userID})
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	seen := make(map[int]struct{})
	todayAppts, pending := 0, 0
	for _, a := range appts {
		seen[a.PatientID] = struct{}{}
		if a.IsOn(today) {
			todayAppts++
		}
		if a.Status == appointment.StatusPending {
			pending++
		}
	}
	active := 0
	for _, p := range scripts {
		if p.Status == prescription.StatusActive {
			active++
		}
	}

	return map[string]any{
		"totalPatients":       len(seen),
		"todayAppointments":   todayAppts,
		"totalAppointments":   len(appts),
		"activePrescriptions": active,
		"pendingAppointments": pending,
	}, nil
}

func (s *StatsService) patientStats(ctx context.Context, userID int) (map[string]any, error) {
	appts, err := s.appointments.List(ctx, &appointment.ListQuery{Role: domain.RolePatient, UserID: userID})
	if err != nil {
		return nil, err
	}
	scripts, err := s.prescriptions.List(ctx, &prescription.ListQuery{Role: domain.RolePatient, UserID: userID})
	if err != nil {
		return nil, err
	}

	// Calendar-date string comparison; today counts as upcoming.
	today := domain.Today()
	upcoming, past := 0, 0
	for _, a := range appts {
		if a.Date >= today {
			upcoming++
		} else {
			past++
		}
	}
	active := 0
	for _, p := range scripts {
		if p.Status == prescription.StatusActive {
			active++
		}
	}

	return map[string]any{
		"upcomingAppointments": upcoming,
		"pastAppointments":     past,
		"activePrescriptions":  active,
		"totalPrescriptions":   len(scripts),
	}, nil
}
