package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoadDashboard(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)
	ctx := context.Background()

	if _, err := c.Login(ctx, "patient@medcare.africa", "Patient123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	d, err := c.LoadDashboard(ctx)
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}

	if _, ok := d.Stats["upcomingAppointments"]; !ok {
		t.Errorf("stats = %v, want patient-shaped keys", d.Stats)
	}
	if len(d.Appointments) != 2 {
		t.Errorf("appointments = %d, want 2", len(d.Appointments))
	}
	if len(d.Prescriptions) != 1 {
		t.Errorf("prescriptions = %d, want 1", len(d.Prescriptions))
	}
	if len(d.Notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(d.Notifications))
	}
}

func TestLoadDashboardFailsWhole(t *testing.T) {
	real := newTestServer(t)

	// Proxy that serves everything from the real API except stats, which
	// always fails. One failed leg must fail the whole load.
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/dashboard/stats") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"message":"Internal server error"}`))
			return
		}
		resp, err := http.Get(real.URL + r.URL.RequestURI())
		if err != nil {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, _ = io.Copy(w, resp.Body)
	}))
	defer proxy.Close()

	c, err := New(proxy.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.LoadDashboard(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "Internal server error" {
		t.Errorf("message = %q", apiErr.Message)
	}
}
