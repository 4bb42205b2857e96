package memory

import (
	"time"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/notification"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

// Seed loads the demo dataset: one account per role plus a second patient,
// a few appointments and prescriptions between them, and two notifications.
// The shared id sequence continues after the highest seeded id.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []*user.User{
		{
			ID:      1,
			Email:   "admin@medcare.africa",
			Name:    "Admin User",
			Role:    domain.RoleAdmin,
			Phone:   "+256-700-123456",
			Address: "Kampala, Uganda",
		},
		{
			ID:             2,
			Email:          "doctor@medcare.africa",
			Name:           "Dr. Sarah Johnson",
			Role:           domain.RoleDoctor,
			Phone:          "+256-700-234567",
			Specialization: "General Medicine",
			License:        "MD12345",
			Department:     "Internal Medicine",
		},
		{
			ID:               3,
			Email:            "patient@medcare.africa",
			Name:             "John Doe",
			Role:             domain.RolePatient,
			Phone:            "+256-700-345678",
			DateOfBirth:      "1990-05-15",
			BloodType:        "O+",
			Allergies:        []string{"Penicillin"},
			EmergencyContact: "Jane Doe - +256-700-456789",
		},
		{
			ID:               4,
			Email:            "jane.smith@example.com",
			Name:             "Jane Smith",
			Role:             domain.RolePatient,
			Phone:            "+256-700-567890",
			DateOfBirth:      "1985-08-22",
			BloodType:        "A+",
			Allergies:        []string{},
			EmergencyContact: "Mike Smith - +256-700-678901",
		},
	}

	s.appointments = []*appointment.Appointment{
		{
			ID:          1,
			PatientID:   3,
			DoctorID:    2,
			PatientName: "John Doe",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2025-01-28",
			Time:        "14:30",
			Type:        "General Consultation",
			Status:      appointment.StatusConfirmed,
			Notes:       "Regular checkup",
		},
		{
			ID:          2,
			PatientID:   4,
			DoctorID:    2,
			PatientName: "Jane Smith",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2025-01-28",
			Time:        "15:00",
			Type:        "Cardiology",
			Status:      appointment.StatusPending,
			Notes:       "Heart condition follow-up",
		},
		{
			ID:          3,
			PatientID:   3,
			DoctorID:    2,
			PatientName: "John Doe",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2025-01-30",
			Time:        "10:00",
			Type:        "Follow-up",
			Status:      appointment.StatusScheduled,
			Notes:       "Lab results review",
		},
	}

	s.prescriptions = []*prescription.Prescription{
		{
			ID:          1,
			PatientID:   3,
			DoctorID:    2,
			PatientName: "John Doe",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2025-01-26",
			Medications: []prescription.Medication{
				{
					Name:         "Paracetamol",
					Dosage:       "500mg",
					Frequency:    "Every 6 hours",
					Duration:     "5 days",
					Instructions: "Take with food",
				},
				{
					Name:         "Ibuprofen",
					Dosage:       "200mg",
					Frequency:    "Twice daily",
					Duration:     "3 days",
					Instructions: "Take after meals",
				},
			},
			Status:    prescription.StatusActive,
			Diagnosis: "Common cold with fever",
		},
		{
			ID:          2,
			PatientID:   4,
			DoctorID:    2,
			PatientName: "Jane Smith",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2025-01-25",
			Medications: []prescription.Medication{
				{
					Name:         "Lisinopril",
					Dosage:       "10mg",
					Frequency:    "Once daily",
					Duration:     "30 days",
					Instructions: "Take in the morning",
				},
			},
			Status:    prescription.StatusActive,
			Diagnosis: "Hypertension management",
		},
	}

	s.notifications = []*notification.Notification{
		{
			ID:        1,
			UserID:    3,
			Title:     "Appointment Reminder",
			Message:   "You have an appointment tomorrow at 10:00 AM with Dr. Sarah Johnson",
			Type:      notification.TypeReminder,
			Read:      false,
			CreatedAt: time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			UserID:    2,
			Title:     "New Patient Registration",
			Message:   "Jane Smith has registered as a new patient",
			Type:      notification.TypeInfo,
			Read:      false,
			CreatedAt: time.Date(2025, 7, 25, 8, 30, 0, 0, time.UTC),
		},
	}

	s.lastID = 4
}
