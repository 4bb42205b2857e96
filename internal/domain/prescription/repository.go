package prescription

import "context"

type Repository interface {
	// Create persists a new prescription, assigning it the next shared id.
	Create(ctx context.Context, p *Prescription) error

	// GetByID retrieves a prescription. Returns ErrPrescriptionNotFound if absent.
	GetByID(ctx context.Context, id int) (*Prescription, error)

	// List returns the filtered view described by q in insertion order.
	List(ctx context.Context, q *ListQuery) ([]*Prescription, error)
}
