package services

import (
	"context"
	"errors"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// mockDB is an in-memory db.Database that counts writes per collection
type mockDB struct {
	requests      []model.BloodRequest
	appointments  []model.DonationAppointment
	notifications []model.Notification
	session       *model.Session

	requestSaves      int
	appointmentSaves  int
	notificationSaves int
	updates           int

	failNotificationSave bool
	failRead             bool
}

var errMockStore = errors.New("store unavailable")

func (m *mockDB) Update(ctx context.Context, fn func(ctx context.Context) error) error {
	m.updates++
	return fn(ctx)
}

func (m *mockDB) GetBloodRequests(ctx context.Context) ([]model.BloodRequest, error) {
	if m.failRead {
		return nil, errMockStore
	}
	return append([]model.BloodRequest(nil), m.requests...), nil
}

func (m *mockDB) SaveBloodRequests(ctx context.Context, requests []model.BloodRequest) error {
	m.requestSaves++
	m.requests = append([]model.BloodRequest(nil), requests...)
	return nil
}

func (m *mockDB) GetAppointments(ctx context.Context) ([]model.DonationAppointment, error) {
	if m.failRead {
		return nil, errMockStore
	}
	return append([]model.DonationAppointment(nil), m.appointments...), nil
}

func (m *mockDB) SaveAppointments(ctx context.Context, appointments []model.DonationAppointment) error {
	m.appointmentSaves++
	m.appointments = append([]model.DonationAppointment(nil), appointments...)
	return nil
}

func (m *mockDB) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	if m.failRead {
		return nil, errMockStore
	}
	return append([]model.Notification(nil), m.notifications...), nil
}

func (m *mockDB) SaveNotifications(ctx context.Context, notifications []model.Notification) error {
	if m.failNotificationSave {
		return errMockStore
	}
	m.notificationSaves++
	m.notifications = append([]model.Notification(nil), notifications...)
	return nil
}

func (m *mockDB) GetSession(ctx context.Context) (*model.Session, error) {
	if m.failRead {
		return nil, errMockStore
	}
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *mockDB) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		m.session = nil
		return nil
	}
	s := *session
	m.session = &s
	return nil
}

func (m *mockDB) ClearSession(ctx context.Context) error {
	m.session = nil
	return nil
}
