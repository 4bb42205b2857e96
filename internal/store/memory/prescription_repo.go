package memory

import (
	"context"

	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
)

type prescriptionRepo struct {
	s *Store
}

func (r *prescriptionRepo) Create(_ context.Context, p *prescription.Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextID()
	cp := *p
	cp.Medications = append([]prescription.Medication(nil), p.Medications...)
	r.s.prescriptions = append(r.s.prescriptions, &cp)
	return nil
}

func (r *prescriptionRepo) GetByID(_ context.Context, id int) (*prescription.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.prescriptions {
		if p.ID == id {
			return copyPrescription(p), nil
		}
	}
	return nil, prescription.ErrPrescriptionNotFound
}

func (r *prescriptionRepo) List(_ context.Context, q *prescription.ListQuery) ([]*prescription.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*prescription.Prescription, 0, len(r.s.prescriptions))
	for _, p := range r.s.prescriptions {
		if q != nil && !q.Matches(p) {
			continue
		}
		result = append(result, copyPrescription(p))
	}
	return result, nil
}

func copyPrescription(p *prescription.Prescription) *prescription.Prescription {
	cp := *p
	cp.Medications = append([]prescription.Medication(nil), p.Medications...)
	return &cp
}
