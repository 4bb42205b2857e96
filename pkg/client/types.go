package client

// Wire types mirroring the API's JSON shapes.

type User struct {
	ID               int      `json:"id"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address,omitempty"`
	Specialization   string   `json:"specialization,omitempty"`
	License          string   `json:"license,omitempty"`
	Department       string   `json:"department,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
}

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

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

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

type Notification struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

type CreateAppointmentInput struct {
	PatientID int    `json:"patientId"`
	DoctorID  int    `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

// AppointmentPatch is a merge patch: nil fields are omitted from the
// request and leave the stored value untouched.
type AppointmentPatch struct {
	PatientID   *int    `json:"patientId,omitempty"`
	DoctorID    *int    `json:"doctorId,omitempty"`
	PatientName *string `json:"patientName,omitempty"`
	DoctorName  *string `json:"doctorName,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type CreatePrescriptionInput struct {
	PatientID   int          `json:"patientId"`
	DoctorID    int          `json:"doctorId"`
	Medications []Medication `json:"medications"`
	Diagnosis   string       `json:"diagnosis"`
}

type UserPatch struct {
	Email            *string   `json:"email,omitempty"`
	Name             *string   `json:"name,omitempty"`
	Role             *string   `json:"role,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	Address          *string   `json:"address,omitempty"`
	Specialization   *string   `json:"specialization,omitempty"`
	License          *string   `json:"license,omitempty"`
	Department       *string   `json:"department,omitempty"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	BloodType        *string   `json:"bloodType,omitempty"`
	Allergies        *[]string `json:"allergies,omitempty"`
	EmergencyContact *string   `json:"emergencyContact,omitempty"`
}

type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// String and Int build pointers for patch fields.
func String(s string) *string { return &s }

func Int(i int) *int { return &i }
