package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/appointment"
	"github.com/medcare-africa/medcare-api/internal/domain/notification"
	"github.com/medcare-africa/medcare-api/internal/domain/prescription"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

func seededStore() *Store {
	s := New()
	s.Seed()
	return s
}

func TestSeedCounts(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	users, err := s.Users().List(ctx, "")
	if err != nil {
		t.Fatalf("List users: %v", err)
	}
	if len(users) != 4 {
		t.Errorf("seeded users = %d, want 4", len(users))
	}

	appts, err := s.Appointments().List(ctx, nil)
	if err != nil {
		t.Fatalf("List appointments: %v", err)
	}
	if len(appts) != 3 {
		t.Errorf("seeded appointments = %d, want 3", len(appts))
	}

	scripts, err := s.Prescriptions().List(ctx, nil)
	if err != nil {
		t.Fatalf("List prescriptions: %v", err)
	}
	if len(scripts) != 2 {
		t.Errorf("seeded prescriptions = %d, want 2", len(scripts))
	}
}

func TestSharedIDSequence(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	a := &appointment.Appointment{PatientID: 3, DoctorID: 2}
	if err := s.Appointments().Create(ctx, a); err != nil {
		t.Fatalf("Create appointment: %v", err)
	}
	if a.ID != 5 {
		t.Errorf("first post-seed id = %d, want 5", a.ID)
	}

	p := &prescription.Prescription{PatientID: 3, DoctorID: 2}
	if err := s.Prescriptions().Create(ctx, p); err != nil {
		t.Fatalf("Create prescription: %v", err)
	}
	if p.ID != 6 {
		t.Errorf("prescription id = %d, want 6 (sequence shared across collections)", p.ID)
	}

	n := &notification.Notification{UserID: 3, Title: "t", Message: "m", Type: notification.TypeInfo}
	if err := s.Notifications().Create(ctx, n); err != nil {
		t.Fatalf("Create notification: %v", err)
	}
	if n.ID != 7 {
		t.Errorf("notification id = %d, want 7", n.ID)
	}

	// Deleting never frees an id for reuse.
	if err := s.Appointments().Delete(ctx, 5); err != nil {
		t.Fatalf("Delete appointment: %v", err)
	}
	a2 := &appointment.Appointment{PatientID: 3, DoctorID: 2}
	if err := s.Appointments().Create(ctx, a2); err != nil {
		t.Fatalf("Create appointment: %v", err)
	}
	if a2.ID != 8 {
		t.Errorf("id after delete = %d, want 8", a2.ID)
	}
}

func TestAppointmentListFilters(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	tests := []struct {
		name string
		q    *appointment.ListQuery
		want int
	}{
		{"admin sees all", &appointment.ListQuery{Role: domain.RoleAdmin}, 3},
		{"doctor 2", &appointment.ListQuery{Role: domain.RoleDoctor, UserID: 2}, 3},
		{"patient 3", &appointment.ListQuery{Role: domain.RolePatient, UserID: 3}, 2},
		{"patient 4", &appointment.ListQuery{Role: domain.RolePatient, UserID: 4}, 1},
		{"unknown patient", &appointment.ListQuery{Role: domain.RolePatient, UserID: 99}, 0},
		{"no filter", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Appointments().List(ctx, tt.q)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d appointments, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAppointmentListInsertionOrder(t *testing.T) {
	s := seededStore()

	appts, err := s.Appointments().List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, a := range appts {
		if a.ID != i+1 {
			t.Fatalf("appointment at position %d has id %d, want insertion order", i, a.ID)
		}
	}
}

func TestUserUpdatePinsID(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	name := "Renamed"
	u, err := s.Users().Update(ctx, 3, &user.UpdateUserCommand{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.ID != 3 {
		t.Errorf("updated user id = %d, want 3", u.ID)
	}
	if u.Name != "Renamed" {
		t.Errorf("updated name = %q", u.Name)
	}

	// Untouched fields survive the merge.
	if u.BloodType != "O+" {
		t.Errorf("BloodType = %q after partial update, want O+", u.BloodType)
	}
}

func TestUpdateReturnsCopy(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	a, err := s.Appointments().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	a.Notes = "mutated by caller"

	again, err := s.Appointments().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.Notes != "Regular checkup" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestNotificationOrderAndMarkRead(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	// Seed has one notification for user 3; add a newer one.
	n := &notification.Notification{UserID: 3, Title: "Newer", Message: "m", Type: notification.TypeInfo}
	if err := s.Notifications().Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	notes, err := s.Notifications().ListByUser(ctx, 3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notes))
	}
	if notes[0].Title != "Newer" {
		t.Errorf("first notification = %q, want newest first", notes[0].Title)
	}

	if err := s.Notifications().MarkRead(ctx, notes[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	// Idempotent.
	if err := s.Notifications().MarkRead(ctx, notes[0].ID); err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}

	notes, _ = s.Notifications().ListByUser(ctx, 3)
	if !notes[0].Read {
		t.Error("notification not marked read")
	}
}

func TestNotificationDeleteTwice(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	if err := s.Notifications().Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Notifications().Delete(ctx, 1); !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotificationNotFound", err)
	}
}

func TestUserListByRole(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	patients, err := s.Users().List(ctx, domain.RolePatient)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(patients) != 2 {
		t.Errorf("patients = %d, want 2", len(patients))
	}

	doctors, _ := s.Users().List(ctx, domain.RoleDoctor)
	if len(doctors) != 1 || doctors[0].Name != "Dr. Sarah Johnson" {
		t.Errorf("doctors = %+v", doctors)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	if _, err := s.Users().GetByID(ctx, 99); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("GetByID(99) error = %v, want ErrUserNotFound", err)
	}
	if _, err := s.Appointments().GetByID(ctx, 99); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Errorf("GetByID(99) error = %v, want ErrAppointmentNotFound", err)
	}
}
