package appointment

import "context"

type Repository interface {
	// Create persists a new appointment, assigning it the next shared id.
	Create(ctx context.Context, a *Appointment) error

	// GetByID retrieves an appointment. Returns ErrAppointmentNotFound if absent.
	GetByID(ctx context.Context, id int) (*Appointment, error)

	// Update merge-applies cmd to an existing appointment.
	Update(ctx context.Context, id int, cmd *UpdateAppointmentCommand) (*Appointment, error)

	// Delete hard-removes an appointment. There is no audit trail.
	Delete(ctx context.Context, id int) error

	// List returns the filtered view described by q in insertion order.
	List(ctx context.Context, q *ListQuery) ([]*Appointment, error)
}
