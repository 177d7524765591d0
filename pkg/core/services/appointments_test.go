package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

func validAppointment() NewAppointment {
	return NewAppointment{
		DonorID:       "donor-1",
		DonorName:     "John Smith",
		BloodType:     model.BloodTypeONeg,
		BloodBankID:   "1",
		BloodBankName: "City Blood Bank",
		ScheduledDate: "2024-02-10",
		ScheduledTime: "09:30",
	}
}

func TestScheduleAppointment(t *testing.T) {
	database := &mockDB{}
	recorder := alert.NewRecorder()

	appointment, err := ScheduleAppointment(context.Background(), database, recorder, zap.NewNop(), testNow, validAppointment())
	require.NoError(t, err)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, model.AppointmentScheduled, appointment.Status)
	assert.True(t, appointment.HasBloodBank())
	assert.False(t, appointment.HasHospital())

	require.Len(t, database.appointments, 1)
	require.Len(t, database.notifications, 1)
	assert.Equal(t, model.NotificationDonationScheduled, database.notifications[0].Type)
	assert.Equal(t, "Donation Scheduled", database.notifications[0].Title)
	assert.Equal(t, "John Smith scheduled a O- donation", database.notifications[0].Message)
	assert.Len(t, recorder.Alerts(), 1)
}

func TestScheduleAppointment_Destination(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewAppointment)
		wantErr error
	}{
		{
			name: "neither destination",
			mutate: func(a *NewAppointment) {
				a.BloodBankID, a.BloodBankName = "", ""
			},
			wantErr: ErrMissingField,
		},
		{
			name: "both destinations",
			mutate: func(a *NewAppointment) {
				a.HospitalID, a.HospitalName = "1", "General Hospital"
			},
			wantErr: ErrInvalidField,
		},
		{
			name:    "bad date",
			mutate:  func(a *NewAppointment) { a.ScheduledDate = "10/02/2024" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "missing time",
			mutate:  func(a *NewAppointment) { a.ScheduledTime = "" },
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := &mockDB{}
			input := validAppointment()
			tt.mutate(&input)

			_, err := ScheduleAppointment(context.Background(), database, nil, zap.NewNop(), testNow, input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, database.appointments)
		})
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	database := &mockDB{appointments: []model.DonationAppointment{
		{ID: "apt-1", DonorName: "John Smith", Status: model.AppointmentScheduled},
		{ID: "apt-2", DonorName: "Sarah Johnson", Status: model.AppointmentCancelled},
	}}
	ctx := context.Background()

	require.NoError(t, UpdateAppointmentStatus(ctx, database, zap.NewNop(), "apt-1", model.AppointmentCompleted))
	assert.Equal(t, model.AppointmentCompleted, database.appointments[0].Status)
	assert.Equal(t, 1, database.appointmentSaves)

	require.NoError(t, UpdateAppointmentStatus(ctx, database, zap.NewNop(), "nope", model.AppointmentCompleted))
	assert.Equal(t, 1, database.appointmentSaves)

	err := UpdateAppointmentStatus(ctx, database, zap.NewNop(), "apt-2", model.AppointmentScheduled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.AppointmentCancelled, database.appointments[1].Status)

	require.NoError(t, UpdateAppointmentStatus(ctx, database, zap.NewNop(), "apt-1", model.AppointmentCompleted))
	assert.Equal(t, 1, database.appointmentSaves)
}
