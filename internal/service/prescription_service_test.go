package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
)

func TestIssuePrescription(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	meds := []prescription.Medication{
		{Name: "Amoxicillin", Dosage: "250mg", Frequency: "Three times daily", Duration: "7 days", Instructions: "Finish the course"},
	}
	p, err := env.prescriptions.Issue(ctx, &prescription.CreatePrescriptionCommand{
		PatientID:   3,
		DoctorID:    2,
		Medications: meds,
		Diagnosis:   "Bacterial infection",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if p.ID != 5 {
		t.Errorf("id = %d, want 5", p.ID)
	}
	if p.Status != prescription.StatusActive {
		t.Errorf("status = %q, want active", p.Status)
	}
	if p.Date != domain.Today() {
		t.Errorf("date = %q, want today", p.Date)
	}
	if p.PatientName != "John Doe" || p.DoctorName != "Dr. Sarah Johnson" {
		t.Errorf("name snapshots = %q / %q", p.PatientName, p.DoctorName)
	}
	if len(p.Medications) != 1 || p.Medications[0].Instructions != "Finish the course" {
		t.Errorf("medications not stored verbatim: %+v", p.Medications)
	}

	if got := testutil.ToFloat64(env.metrics.PrescriptionsIssued); got != 1 {
		t.Errorf("prescriptions issued counter = %v, want 1", got)
	}
}

func TestIssueInvalidParticipants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.prescriptions.Issue(ctx, &prescription.CreatePrescriptionCommand{
		PatientID: 99,
		DoctorID:  2,
	})
	if !errors.Is(err, prescription.ErrInvalidParticipants) {
		t.Errorf("Issue error = %v, want ErrInvalidParticipants", err)
	}

	scripts, _ := env.prescriptions.List(ctx, nil)
	if len(scripts) != 2 {
		t.Errorf("prescriptions after rejected create = %d, want 2", len(scripts))
	}
}

func TestPrescriptionListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	patient, err := env.prescriptions.List(ctx, &prescription.ListQuery{Role: domain.RolePatient, UserID: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(patient) != 1 || patient[0].Diagnosis != "Common cold with fever" {
		t.Errorf("patient 3 prescriptions = %+v", patient)
	}

	doctor, _ := env.prescriptions.List(ctx, &prescription.ListQuery{Role: domain.RoleDoctor, UserID: 2})
	if len(doctor) != 2 {
		t.Errorf("doctor 2 prescriptions = %d, want 2", len(doctor))
	}
}
