package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// NewNotification holds the caller-supplied fields of a notification
type NewNotification struct {
	Type    model.NotificationType `json:"type" validate:"required,oneof=blood_request donation_scheduled emergency appointment general"`
	Title   string                 `json:"title" validate:"required"`
	Message string                 `json:"message" validate:"required"`
	From    string                 `json:"from"`
	// Data is marshalled as the notification payload, typically the originating record
	Data any `json:"data,omitempty"`
}

// AddNotification records a new unread notification at the head of the list, persists the
// whole list, then raises a transient alert. Alert failures are logged and never returned.
func AddNotification(ctx context.Context, database db.NotificationStore, alerter alert.Alerter, logger *zap.Logger, now time.Time, input NewNotification) (*model.Notification, error) {
	var notification *model.Notification
	err := database.Update(ctx, func(ctx context.Context) error {
		var err error
		notification, err = storeNotification(ctx, database, logger, now, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	raiseAlert(ctx, alerter, logger, *notification)
	return notification, nil
}

// storeNotification is the read-prepend-write half of AddNotification. Callers hold the update lock.
func storeNotification(ctx context.Context, database db.NotificationStore, logger *zap.Logger, now time.Time, input NewNotification) (*model.Notification, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var payload json.RawMessage
	if input.Data != nil {
		raw, err := json.Marshal(input.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		payload = raw
	}

	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	notification := model.Notification{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		From:      input.From,
		Timestamp: timestamp(now),
		Read:      false,
		Data:      payload,
	}

	notifications = append([]model.Notification{notification}, notifications...)
	if err := database.SaveNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to save notifications: %w", err)
	}

	notificationsTotal.WithLabelValues(string(notification.Type)).Inc()
	logger.Debug("Notification added",
		zap.String("id", notification.ID),
		zap.String("type", string(notification.Type)),
		zap.Int("total", len(notifications)))

	return &notification, nil
}

// raiseAlert runs outside the update lock so a slow sink does not hold up writers
func raiseAlert(ctx context.Context, alerter alert.Alerter, logger *zap.Logger, notification model.Notification) {
	if alerter == nil {
		return
	}
	a := alert.Alert{Type: notification.Type, Title: notification.Title, Message: notification.Message, From: notification.From}
	if err := alerter.Alert(ctx, a); err != nil {
		logger.Warn("Failed to raise alert", zap.String("notification_id", notification.ID), zap.Error(err))
	}
}

// MarkAsRead flips one notification's read flag. An unknown or already-read id is a no-op
// and the list is not rewritten.
func MarkAsRead(ctx context.Context, database db.NotificationStore, logger *zap.Logger, id string) error {
	return database.Update(ctx, func(ctx context.Context) error {
		return markAsRead(ctx, database, logger, id)
	})
}

func markAsRead(ctx context.Context, database db.NotificationStore, logger *zap.Logger, id string) error {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	idx := findNotification(notifications, id)
	if idx < 0 {
		logger.Debug("Notification not found, nothing to mark", zap.String("id", id))
		return nil
	}
	if notifications[idx].Read {
		return nil
	}

	notifications[idx].Read = true
	if err := database.SaveNotifications(ctx, notifications); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}

	logger.Debug("Notification marked as read", zap.String("id", id))
	return nil
}

// MarkAllAsRead marks every notification read, returning how many changed
func MarkAllAsRead(ctx context.Context, database db.NotificationStore, logger *zap.Logger) (int, error) {
	changed := 0
	err := database.Update(ctx, func(ctx context.Context) error {
		var err error
		changed, err = markAllAsRead(ctx, database, logger)
		return err
	})
	return changed, err
}

func markAllAsRead(ctx context.Context, database db.NotificationStore, logger *zap.Logger) (int, error) {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	changed := 0
	for i := range notifications {
		if !notifications[i].Read {
			notifications[i].Read = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err := database.SaveNotifications(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to save notifications: %w", err)
	}

	logger.Debug("Marked all notifications as read", zap.Int("count", changed))
	return changed, nil
}

// UnreadCount is recomputed from storage on every call
func UnreadCount(ctx context.Context, database db.NotificationStore) (int, error) {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return CountUnread(notifications), nil
}

// CountUnread counts notifications with read == false
func CountUnread(notifications []model.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// ListNotifications returns notifications newest first
func ListNotifications(ctx context.Context, database db.NotificationStore) ([]model.Notification, error) {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

func findNotification(notifications []model.Notification, id string) int {
	for i, n := range notifications {
		if n.ID == id {
			return i
		}
	}
	return -1
}
