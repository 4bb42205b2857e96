package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/medcare-africa/medcare-api/internal/domain"
)

func TestLoginAllDemoAccounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		email    string
		password string
		wantID   int
		wantRole domain.Role
		wantName string
	}{
		{"admin@medcare.africa", "Admin123!", 1, domain.RoleAdmin, "Admin User"},
		{"doctor@medcare.africa", "Doctor123!", 2, domain.RoleDoctor, "Dr. Sarah Johnson"},
		{"patient@medcare.africa", "Patient123!", 3, domain.RolePatient, "John Doe"},
	}

	var firstToken string
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			token, u, err := env.auth.Login(ctx, tt.email, tt.password)
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if token == "" {
				t.Fatal("empty token")
			}
			if firstToken == "" {
				firstToken = token
			} else if token != firstToken {
				t.Error("token differs between logins, want one fixed string per process")
			}
			if u.ID != tt.wantID || u.Role != tt.wantRole || u.Name != tt.wantName {
				t.Errorf("user = %+v", u)
			}
			if u.Password != "" {
				t.Error("password leaked in login response")
			}
		})
	}
}

func TestLoginRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@medcare.africa", "wrong"},
		{"unknown email", "nobody@medcare.africa", "Admin123!"},
		{"mismatched pair", "admin@medcare.africa", "Doctor123!"},
		{"seeded but not demo", "jane.smith@example.com", "anything"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.auth.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}

	if got := testutil.ToFloat64(env.metrics.LoginsTotal.WithLabelValues("failure")); got != float64(len(tests)) {
		t.Errorf("failure counter = %v, want %d", got, len(tests))
	}
}
