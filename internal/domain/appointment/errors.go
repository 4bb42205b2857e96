package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidParticipants = errors.New("invalid patient or doctor ID")
)
