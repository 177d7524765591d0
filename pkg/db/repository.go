package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/kvstore"
)

// Repository maps each collection to one JSON blob in a key-value store.
// Every save overwrites the whole blob. Updates through one Repository are
// serialised; separate processes sharing a backend are last-writer-wins.
type Repository struct {
	store  kvstore.Store
	logger *zap.Logger
	mu     sync.Mutex
}

// NewRepository creates a typed repository over store
func NewRepository(store kvstore.Store, logger *zap.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Close closes the underlying store
func (r *Repository) Close() error {
	return r.store.Close()
}

// Update runs fn while holding the repository's write lock. fn must not call Update.
func (r *Repository) Update(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (r *Repository) GetBloodRequests(ctx context.Context) ([]model.BloodRequest, error) {
	return readCollection[model.BloodRequest](ctx, r, kvstore.KeyBloodRequests)
}

func (r *Repository) SaveBloodRequests(ctx context.Context, requests []model.BloodRequest) error {
	return r.writeJSON(ctx, kvstore.KeyBloodRequests, nonNil(requests))
}

func (r *Repository) GetAppointments(ctx context.Context) ([]model.DonationAppointment, error) {
	return readCollection[model.DonationAppointment](ctx, r, kvstore.KeyAppointments)
}

func (r *Repository) SaveAppointments(ctx context.Context, appointments []model.DonationAppointment) error {
	return r.writeJSON(ctx, kvstore.KeyAppointments, nonNil(appointments))
}

func (r *Repository) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	return readCollection[model.Notification](ctx, r, kvstore.KeyNotifications)
}

func (r *Repository) SaveNotifications(ctx context.Context, notifications []model.Notification) error {
	return r.writeJSON(ctx, kvstore.KeyNotifications, nonNil(notifications))
}

// GetSession returns the stored session, or nil if there is none or it cannot be decoded
func (r *Repository) GetSession(ctx context.Context) (*model.Session, error) {
	data, found, err := r.store.Read(ctx, kvstore.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !found {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("Discarding undecodable session", zap.Error(err))
		return nil, nil
	}
	if !session.Role.IsValid() {
		r.logger.Warn("Discarding session with unknown role", zap.String("role", string(session.Role)))
		return nil, nil
	}

	return &session, nil
}

func (r *Repository) SaveSession(ctx context.Context, session *model.Session) error {
	if session == nil {
		return r.ClearSession(ctx)
	}
	return r.writeJSON(ctx, kvstore.KeySession, session)
}

func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, kvstore.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// readCollection decodes the blob under key. A missing or undecodable blob is an
// empty collection; the discard is logged so corrupt data does not go unnoticed.
func readCollection[T any](ctx context.Context, r *Repository, key string) ([]T, error) {
	data, found, err := r.store.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found || len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		r.logger.Warn("Discarding undecodable collection",
			zap.String("key", key),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		return []T{}, nil
	}

	return items, nil
}

func (r *Repository) writeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Write(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	r.logger.Debug("Persisted collection", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
