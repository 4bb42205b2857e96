package v1

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/notification"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
	"github.com/medcare-africa/medcare-api/internal/service"
)

// Every response carries a success flag; payload keys sit beside it at the
// top level rather than under a data wrapper.
func respondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, appointment.ErrInvalidParticipants),
		errors.Is(err, prescription.ErrInvalidParticipants):
		respondError(c, http.StatusBadRequest, "Invalid patient or doctor ID")

	case errors.Is(err, appointment.ErrAppointmentNotFound):
		respondError(c, http.StatusNotFound, "Appointment not found")

	case errors.Is(err, prescription.ErrPrescriptionNotFound):
		respondError(c, http.StatusNotFound, "Prescription not found")

	case errors.Is(err, user.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")

	case errors.Is(err, notification.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, "Notification not found")

	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// idParam reads a numeric path parameter. A non-numeric value can never
// match a stored record, so it is reported with the same not-found message
// as an unknown id.
func idParam(c *gin.Context, notFoundMessage string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent or malformed
// values yield zero, which matches no record.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// looseID accepts an id sent either as a JSON number or as a numeric
// string. Unparseable values decode to zero, which resolves to no user and
// is rejected downstream as an invalid participant.
type looseID int

func (l *looseID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*l = 0
		return nil
	}
	*l = looseID(n)
	return nil
}

func (l *looseID) Int() int {
	if l == nil {
		return 0
	}
	return int(*l)
}
