package appointment

import (
	"github.com/medcare-africa/medcare-api/internal/domain"
)

// Well-known statuses. Status is free-text on the wire; these are the values
// the dashboards aggregate on.
const (
	StatusScheduled = "scheduled"
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment links a patient and a doctor at a calendar date and local
// time. PatientName and DoctorName are snapshots taken at creation time and
// are deliberately not refreshed when the referenced user is later edited.
type Appointment struct {
	ID          int    `json:"id"`
	PatientID   int    `json:"patientId"`
	DoctorID    int    `json:"doctorId"`
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (a *Appointment) IsOn(date string) bool {
	return a.Date == date
}

type CreateAppointmentCommand struct {
	PatientID int
	DoctorID  int
	Date      string
	Time      string
	Type      string
	Notes     string
}

// UpdateAppointmentCommand merge-updates an appointment: only non-nil fields
// overwrite the stored record. Participant ids are not re-validated here.
type UpdateAppointmentCommand struct {
	PatientID   *int
	DoctorID    *int
	PatientName *string
	DoctorName  *string
	Date        *string
	Time        *string
	Type        *string
	Status      *string
	Notes       *string
}

func (a *Appointment) Apply(cmd *UpdateAppointmentCommand) {
	if cmd.PatientID != nil {
		a.PatientID = *cmd.PatientID
	}
	if cmd.DoctorID != nil {
		a.DoctorID = *cmd.DoctorID
	}
	if cmd.PatientName != nil {
		a.PatientName = *cmd.PatientName
	}
	if cmd.DoctorName != nil {
		a.DoctorName = *cmd.DoctorName
	}
	if cmd.Date != nil {
		a.Date = *cmd.Date
	}
	if cmd.Time != nil {
		a.Time = *cmd.Time
	}
	if cmd.Type != nil {
		a.Type = *cmd.Type
	}
	if cmd.Status != nil {
		a.Status = *cmd.Status
	}
	if cmd.Notes != nil {
		a.Notes = *cmd.Notes
	}
}

// ListQuery filters the collection by the caller's role: patients see
// appointments where they are the patient, doctors where they are the
// doctor, and any other role sees the full collection.
type ListQuery struct {
	Role   domain.Role
	UserID int
}

// Matches reports whether a belongs to the filtered view described by q.
func (q *ListQuery) Matches(a *Appointment) bool {
	switch q.Role {
	case domain.RolePatient:
		return a.PatientID == q.UserID
	case domain.RoleDoctor:
		return a.DoctorID == q.UserID
	default:
		return true
	}
}
