package prescription

import "errors"

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidParticipants  = errors.New("invalid patient or doctor ID")
)
