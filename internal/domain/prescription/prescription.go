package prescription

import (
	"github.com/medcare-africa/medcare-api/internal/domain"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Medication is one line item of a prescription. Dosage, frequency and
// duration are free-text and stored verbatim.
type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// Prescription is issued by a doctor for a patient and is immutable once
// created: there is no update or delete operation. Names are point-in-time
// snapshots, like on appointments.
type Prescription struct {
	ID          int          `json:"id"`
	PatientID   int          `json:"patientId"`
	DoctorID    int          `json:"doctorId"`
	PatientName string       `json:"patientName"`
	DoctorName  string       `json:"doctorName"`
	Date        string       `json:"date"`
	Medications []Medication `json:"medications"`
	Diagnosis   string       `json:"diagnosis"`
	Status      string       `json:"status"`
}

type CreatePrescriptionCommand struct {
	PatientID   int
	DoctorID    int
	Medications []Medication
	Diagnosis   string
}

// ListQuery has the same role-based filter semantics as appointments,
// keyed on PatientID/DoctorID respectively.
type ListQuery struct {
	Role   domain.Role
	UserID int
}

func (q *ListQuery) Matches(p *Prescription) bool {
	switch q.Role {
	case domain.RolePatient:
		return p.PatientID == q.UserID
	case domain.RoleDoctor:
		return p.DoctorID == q.UserID
	default:
		return true
	}
}
