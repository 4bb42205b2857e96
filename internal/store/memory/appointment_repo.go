package memory

import (
	"context"

	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
)

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.nextID()
	cp := *a
	r.s.appointments = append(r.s.appointments, &cp)
	return nil
}

func (r *appointmentRepo) GetByID(_ context.Context, id int) (*appointment.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, appointment.ErrAppointmentNotFound
}

func (r *appointmentRepo) Update(_ context.Context, id int, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.appointments {
		if a.ID == id {
			a.Apply(cmd)
			cp := *a
			return &cp, nil
		}
	}
	return nil, appointment.ErrAppointmentNotFound
}

func (r *appointmentRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, a := range r.s.appointments {
		if a.ID == id {
			r.s.appointments = append(r.s.appointments[:i], r.s.appointments[i+1:]...)
			return nil
		}
	}
	return appointment.ErrAppointmentNotFound
}

func (r *appointmentRepo) List(_ context.Context, q *appointment.ListQuery) ([]*appointment.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*appointment.Appointment, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		if q != nil && !q.Matches(a) {
			continue
		}
		cp := *a
		result = append(result, &cp)
	}
	return result, nil
}
