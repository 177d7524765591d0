package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// AppointmentNotificationStore is what scheduling needs: the appointments plus somewhere to notify
type AppointmentNotificationStore interface {
	db.AppointmentStore
	db.NotificationStore
}

// NewAppointment holds the caller-supplied fields of a donation appointment.
// Exactly one of the hospital or blood bank references must be given.
type NewAppointment struct {
	DonorID       string          `json:"donorId"`
	DonorName     string          `json:"donorName" validate:"required"`
	BloodType     model.BloodType `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	HospitalID    string          `json:"hospitalId,omitempty"`
	HospitalName  string          `json:"hospitalName,omitempty"`
	BloodBankID   string          `json:"bloodBankId,omitempty"`
	BloodBankName string          `json:"bloodBankName,omitempty"`
	ScheduledDate string          `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	ScheduledTime string          `json:"scheduledTime" validate:"required,datetime=15:04"`
}

func (a NewAppointment) validateDestination() error {
	hasHospital := a.HospitalID != "" || a.HospitalName != ""
	hasBloodBank := a.BloodBankID != "" || a.BloodBankName != ""

	switch {
	case !hasHospital && !hasBloodBank:
		return missingField("hospitalId or bloodBankId")
	case hasHospital && hasBloodBank:
		return fmt.Errorf("%w: appointment cannot target both a hospital and a blood bank", ErrInvalidField)
	}
	return nil
}

// ScheduleAppointment validates the input, stores a new Scheduled appointment at the head of
// the list and dispatches a donation_scheduled notification carrying the record
func ScheduleAppointment(ctx context.Context, database AppointmentNotificationStore, alerter alert.Alerter, logger *zap.Logger, now time.Time, input NewAppointment) (*model.DonationAppointment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := input.validateDestination(); err != nil {
		return nil, err
	}

	appointment := model.DonationAppointment{
		ID:            uuid.New().String(),
		DonorID:       input.DonorID,
		DonorName:     input.DonorName,
		BloodType:     input.BloodType,
		HospitalID:    input.HospitalID,
		HospitalName:  input.HospitalName,
		BloodBankID:   input.BloodBankID,
		BloodBankName: input.BloodBankName,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Status:        model.AppointmentScheduled,
		CreatedAt:     timestamp(now),
	}

	var notification *model.Notification
	err := database.Update(ctx, func(ctx context.Context) error {
		appointments, err := database.GetAppointments(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch appointments: %w", err)
		}

		appointments = append([]model.DonationAppointment{appointment}, appointments...)
		if err := database.SaveAppointments(ctx, appointments); err != nil {
			return fmt.Errorf("failed to save appointments: %w", err)
		}

		logger.Info("Donation scheduled",
			zap.String("id", appointment.ID),
			zap.String("donor", appointment.DonorName),
			zap.String("destination", appointment.Destination()),
			zap.String("date", appointment.ScheduledDate),
			zap.String("time", appointment.ScheduledTime))

		notification, err = storeNotification(ctx, database, logger, now, NewNotification{
			Type:    model.NotificationDonationScheduled,
			Title:   "Donation Scheduled",
			Message: fmt.Sprintf("%s scheduled a %s donation", appointment.DonorName, appointment.BloodType),
			From:    appointment.DonorName,
			Data:    appointment,
		})
		if err != nil {
			return fmt.Errorf("appointment %s saved but notification failed: %w", appointment.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	raiseAlert(ctx, alerter, logger, *notification)
	return &appointment, nil
}

// UpdateAppointmentStatus changes only the status of the appointment with id. An unknown id
// is a silent no-op. Leaving Completed or Cancelled returns ErrInvalidTransition.
func UpdateAppointmentStatus(ctx context.Context, database db.AppointmentStore, logger *zap.Logger, id string, status model.AppointmentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: status %q", ErrInvalidField, status)
	}

	return database.Update(ctx, func(ctx context.Context) error {
		return updateAppointmentStatus(ctx, database, logger, id, status)
	})
}

func updateAppointmentStatus(ctx context.Context, database db.AppointmentStore, logger *zap.Logger, id string, status model.AppointmentStatus) error {
	appointments, err := database.GetAppointments(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch appointments: %w", err)
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Appointment not found, nothing to update", zap.String("id", id))
		return nil
	}

	current := appointments[idx].Status
	if !current.CanTransitionTo(status) {
		return fmt.Errorf("%w: appointment %s is %s, cannot become %s", ErrInvalidTransition, id, current, status)
	}
	if current == status {
		return nil
	}

	appointments[idx].Status = status
	if err := database.SaveAppointments(ctx, appointments); err != nil {
		return fmt.Errorf("failed to save appointments: %w", err)
	}

	statusUpdatesTotal.WithLabelValues("appointment", string(status)).Inc()
	logger.Info("Appointment status updated",
		zap.String("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(status)))

	return nil
}

// ListAppointments returns every appointment newest first
func ListAppointments(ctx context.Context, database db.AppointmentStore) ([]model.DonationAppointment, error) {
	appointments, err := database.GetAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appointments, nil
}
