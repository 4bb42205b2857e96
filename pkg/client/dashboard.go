package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard is everything a landing page needs in one load.
type Dashboard struct {
	Stats         map[string]any
	Appointments  []Appointment
	Prescriptions []Prescription
	Notifications []Notification
}

// LoadDashboard fetches stats, appointments, prescriptions, and
// notifications concurrently. All four must succeed: any single failure
// fails the whole load, and partial results are discarded.
func (c *Client) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := c.DashboardStats(ctx)
		if err != nil {
			return err
		}
		d.Stats = stats
		return nil
	})
	g.Go(func() error {
		appts, err := c.Appointments(ctx)
		if err != nil {
			return err
		}
		d.Appointments = appts
		return nil
	})
	g.Go(func() error {
		scripts, err := c.Prescriptions(ctx)
		if err != nil {
			return err
		}
		d.Prescriptions = scripts
		return nil
	})
	g.Go(func() error {
		notes, err := c.Notifications(ctx)
		if err != nil {
			return err
		}
		d.Notifications = notes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
