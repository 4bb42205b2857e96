package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used for appointment and
// prescription dates. Comparisons are by calendar date only; time of day is
// never considered.
const DateLayout = "2006-01-02"

func Today() string {
	return time.Now().Format(DateLayout)
}
