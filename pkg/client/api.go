package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type appointmentsResponse struct {
	Envelope
	Appointments []Appointment `json:"appointments"`
}

type appointmentResponse struct {
	Envelope
	Appointment *Appointment `json:"appointment"`
}

type prescriptionsResponse struct {
	Envelope
	Prescriptions []Prescription `json:"prescriptions"`
}

type prescriptionResponse struct {
	Envelope
	Prescription *Prescription `json:"prescription"`
}

type usersResponse struct {
	Envelope
	Users []User `json:"users"`
}

type userResponse struct {
	Envelope
	User *User `json:"user"`
}

type statsResponse struct {
	Envelope
	Stats map[string]any `json:"stats"`
}

type notificationsResponse struct {
	Envelope
	Notifications []Notification `json:"notifications"`
}

// viewQuery builds the role/userId parameters every scoped listing takes,
// derived from the cached session. Logged-out callers send neither and see
// the unfiltered collection, matching the server's default.
func (c *Client) viewQuery() url.Values {
	q := url.Values{}
	if u := c.CurrentUser(); u != nil {
		q.Set("role", u.Role)
		q.Set("userId", strconv.Itoa(u.ID))
	}
	return q
}

func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var resp appointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/appointments", c.viewQuery(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*Appointment, error) {
	var resp appointmentResponse
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.Appointment, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id int, patch AppointmentPatch) (*Appointment, error) {
	var resp appointmentResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), nil, patch, &resp); err != nil {
		return nil, err
	}
	return resp.Appointment, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, nil)
}

func (c *Client) Prescriptions(ctx context.Context) ([]Prescription, error) {
	var resp prescriptionsResponse
	if err := c.do(ctx, http.MethodGet, "/prescriptions", c.viewQuery(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prescriptions, nil
}

func (c *Client) CreatePrescription(ctx context.Context, in CreatePrescriptionInput) (*Prescription, error) {
	var resp prescriptionResponse
	if err := c.do(ctx, http.MethodPost, "/prescriptions", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp.Prescription, nil
}

// Users lists users, optionally filtered by role; pass an empty role for
// the full directory.
func (c *Client) Users(ctx context.Context, role string) ([]User, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", role)
	}
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) User(ctx context.Context, id int) (*User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, patch UserPatch) (*User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, patch, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) DashboardStats(ctx context.Context) (map[string]any, error) {
	var resp statsResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", c.viewQuery(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	q := url.Values{}
	if u := c.CurrentUser(); u != nil {
		q.Set("userId", strconv.Itoa(u.ID))
	}
	var resp notificationsResponse
	if err := c.do(ctx, http.MethodGet, "/notifications", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}

// Health probes the server's liveness endpoint, which sits outside the
// /api prefix.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.doRaw(ctx, http.MethodGet, "/health", nil, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
