package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// DashboardInput loads every stored collection for the session's dashboard
func DashboardInput(ctx context.Context, database db.Database, session model.Session, now time.Time) (dashboard.Input, error) {
	requests, err := database.GetBloodRequests(ctx)
	if err != nil {
		return dashboard.Input{}, fmt.Errorf("failed to load blood requests: %w", err)
	}
	appointments, err := database.GetAppointments(ctx)
	if err != nil {
		return dashboard.Input{}, fmt.Errorf("failed to load appointments: %w", err)
	}
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return dashboard.Input{}, fmt.Errorf("failed to load notifications: %w", err)
	}

	return dashboard.Input{
		Session:       session,
		Requests:      requests,
		Appointments:  appointments,
		Notifications: notifications,
		Now:           now,
	}, nil
}
