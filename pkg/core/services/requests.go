package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/directory"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// RequestNotificationStore is what creating a request needs: the requests plus somewhere to notify
type RequestNotificationStore interface {
	db.RequestStore
	db.NotificationStore
}

// NewBloodRequest holds the caller-supplied fields of a blood request.
// Identifier, timestamp and status are always assigned by CreateBloodRequest.
type NewBloodRequest struct {
	RequesterID   string              `json:"requesterId" validate:"required"`
	RequesterName string              `json:"requesterName" validate:"required"`
	RequesterType model.RequesterType `json:"requesterType" validate:"required,oneof=recipient hospital"`
	BloodType     model.BloodType     `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsNeeded   int                 `json:"unitsNeeded" validate:"required,min=1"`
	Urgency       model.Urgency       `json:"urgency" validate:"required,oneof=Critical Urgent Normal"`
	HospitalName  string              `json:"hospitalName,omitempty"`
	Description   string              `json:"description,omitempty"`
	Location      string              `json:"location,omitempty"`
}

// CreateBloodRequest validates the input, stores a new Active request at the head of the list
// and dispatches a blood_request notification carrying the record
func CreateBloodRequest(ctx context.Context, database RequestNotificationStore, alerter alert.Alerter, logger *zap.Logger, now time.Time, input NewBloodRequest) (*model.BloodRequest, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	request := model.BloodRequest{
		ID:            uuid.New().String(),
		RequesterID:   input.RequesterID,
		RequesterName: input.RequesterName,
		RequesterType: input.RequesterType,
		BloodType:     input.BloodType,
		UnitsNeeded:   input.UnitsNeeded,
		Urgency:       input.Urgency,
		HospitalName:  input.HospitalName,
		Description:   input.Description,
		Status:        model.RequestActive,
		CreatedAt:     timestamp(now),
		Location:      input.Location,
	}

	var notification *model.Notification
	err := database.Update(ctx, func(ctx context.Context) error {
		requests, err := database.GetBloodRequests(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch blood requests: %w", err)
		}

		requests = append([]model.BloodRequest{request}, requests...)
		if err := database.SaveBloodRequests(ctx, requests); err != nil {
			return fmt.Errorf("failed to save blood requests: %w", err)
		}

		logger.Info("Blood request created",
			zap.String("id", request.ID),
			zap.String("blood_type", string(request.BloodType)),
			zap.Int("units", request.UnitsNeeded),
			zap.String("urgency", string(request.Urgency)))

		notification, err = storeNotification(ctx, database, logger, now, NewNotification{
			Type:    model.NotificationBloodRequest,
			Title:   "New Blood Request",
			Message: fmt.Sprintf("%s needs %d units of %s blood", request.RequesterName, request.UnitsNeeded, request.BloodType),
			From:    request.RequesterName,
			Data:    request,
		})
		if err != nil {
			return fmt.Errorf("blood request %s saved but notification failed: %w", request.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	raiseAlert(ctx, alerter, logger, *notification)
	return &request, nil
}

// UpdateRequestStatus changes only the status of the request with id. An unknown id is a
// silent no-op. Leaving Fulfilled or Cancelled returns ErrInvalidTransition.
func UpdateRequestStatus(ctx context.Context, database db.RequestStore, logger *zap.Logger, id string, status model.RequestStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: status %q", ErrInvalidField, status)
	}

	return database.Update(ctx, func(ctx context.Context) error {
		return updateRequestStatus(ctx, database, logger, id, status)
	})
}

func updateRequestStatus(ctx context.Context, database db.RequestStore, logger *zap.Logger, id string, status model.RequestStatus) error {
	requests, err := database.GetBloodRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch blood requests: %w", err)
	}

	idx := -1
	for i := range requests {
		if requests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Blood request not found, nothing to update", zap.String("id", id))
		return nil
	}

	current := requests[idx].Status
	if !current.CanTransitionTo(status) {
		return fmt.Errorf("%w: request %s is %s, cannot become %s", ErrInvalidTransition, id, current, status)
	}
	if current == status {
		return nil
	}

	requests[idx].Status = status
	if err := database.SaveBloodRequests(ctx, requests); err != nil {
		return fmt.Errorf("failed to save blood requests: %w", err)
	}

	statusUpdatesTotal.WithLabelValues("request", string(status)).Inc()
	logger.Info("Blood request status updated",
		zap.String("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(status)))

	return nil
}

// ListBloodRequests returns every request newest first
func ListBloodRequests(ctx context.Context, database db.RequestStore) ([]model.BloodRequest, error) {
	requests, err := database.GetBloodRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blood requests: %w", err)
	}
	return requests, nil
}

// RequestDetails is one request with the directory donors whose blood it can take
type RequestDetails struct {
	Request          model.BloodRequest `json:"request"`
	CompatibleDonors []directory.Donor  `json:"compatibleDonors"`
}

// GetRequestDetails looks up a request by id, returning ErrNotFound for an unknown id
func GetRequestDetails(ctx context.Context, database db.RequestStore, id string) (*RequestDetails, error) {
	requests, err := database.GetBloodRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blood requests: %w", err)
	}

	for _, r := range requests {
		if r.ID != id {
			continue
		}
		donors := []directory.Donor{}
		for _, d := range directory.SearchDonors("") {
			if dashboard.CanDonateTo(d.BloodType, r.BloodType) {
				donors = append(donors, d)
			}
		}
		return &RequestDetails{Request: r, CompatibleDonors: donors}, nil
	}

	return nil, fmt.Errorf("%w: blood request %s", ErrNotFound, id)
}
