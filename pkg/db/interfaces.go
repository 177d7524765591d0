package db

import (
	"context"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// Updater serialises read-modify-write sequences. Reads and saves made inside fn
// cannot interleave with another Update on the same database.
type Updater interface {
	Update(ctx context.Context, fn func(ctx context.Context) error) error
}

// RequestStore defines the persistence operations for blood requests
type RequestStore interface {
	Updater
	GetBloodRequests(ctx context.Context) ([]model.BloodRequest, error)
	SaveBloodRequests(ctx context.Context, requests []model.BloodRequest) error
}

// AppointmentStore defines the persistence operations for donation appointments
type AppointmentStore interface {
	Updater
	GetAppointments(ctx context.Context) ([]model.DonationAppointment, error)
	SaveAppointments(ctx context.Context, appointments []model.DonationAppointment) error
}

// NotificationStore defines the persistence operations for notifications
type NotificationStore interface {
	Updater
	GetNotifications(ctx context.Context) ([]model.Notification, error)
	SaveNotifications(ctx context.Context, notifications []model.Notification) error
}

// SessionStore defines the persistence operations for the current session.
// GetSession returns nil when nobody is logged in.
type SessionStore interface {
	GetSession(ctx context.Context) (*model.Session, error)
	SaveSession(ctx context.Context, session *model.Session) error
	ClearSession(ctx context.Context) error
}

// Database is the full typed repository.
// Repository implements it over any kvstore.Store backend.
type Database interface {
	RequestStore
	AppointmentStore
	NotificationStore
	SessionStore
}
