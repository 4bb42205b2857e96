// Package memory holds the process-owned data store: four insertion-ordered
// collections guarded by a single lock, with one shared id sequence. The
// store is instantiated once per process and handed to the services; nothing
// else may touch the collections. The lock is the concurrency model: each
// request's read-modify-write is atomic, and there is no optimistic
// concurrency across multi-request client workflows.
package memory

import (
	"sync"

	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/notification"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	// lastID is the high-water mark of assigned entity ids. Appointments,
	// prescriptions and notifications all draw from it, so ids stay unique
	// and monotonically increasing across collections.
	lastID int

	users         []*user.User
	appointments  []*appointment.Appointment
	prescriptions []*prescription.Prescription
	notifications []*notification.Notification
}

func New() *Store {
	return &Store{}
}

// nextID returns the next shared id. Callers must hold mu.
func (s *Store) nextID() int {
	s.lastID++
	return s.lastID
}

func (s *Store) Users() user.Repository {
	return &userRepo{s: s}
}

func (s *Store) Appointments() appointment.Repository {
	return &appointmentRepo{s: s}
}

func (s *Store) Prescriptions() prescription.Repository {
	return &prescriptionRepo{s: s}
}

func (s *Store) Notifications() notification.Repository {
	return &notificationRepo{s: s}
}
