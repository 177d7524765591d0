package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// Registration is the sign-up form. Password is checked for presence and never stored.
type Registration struct {
	Name             string          `json:"name" validate:"required"`
	Email            string          `json:"email" validate:"required,email"`
	Password         string          `json:"password" validate:"required"`
	Role             model.Role      `json:"userType" validate:"required,oneof=donor recipient hospital bloodbank"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	BloodType        model.BloodType `json:"bloodType,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	OrganizationName string          `json:"organizationName,omitempty"`
}

// Credentials is the login form. The profile fields are optional and fill in what a
// registration would otherwise have stored.
type Credentials struct {
	Email            string          `json:"email" validate:"required,email"`
	Password         string          `json:"password" validate:"required"`
	Role             model.Role      `json:"userType" validate:"required,oneof=donor recipient hospital bloodbank"`
	Name             string          `json:"name,omitempty"`
	BloodType        model.BloodType `json:"bloodType,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	OrganizationName string          `json:"organizationName,omitempty"`
}

// Register stores a session for a new user. Donors and recipients must give a blood type,
// hospitals and blood banks an organisation name.
func Register(ctx context.Context, database db.SessionStore, logger *zap.Logger, input Registration) (*model.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Role.NeedsBloodType() && input.BloodType == "" {
		return nil, missingField("bloodType")
	}
	if input.Role.IsOrganisation() && input.OrganizationName == "" {
		return nil, missingField("organizationName")
	}

	session := &model.Session{
		ID:      uuid.New().String(),
		Role:    input.Role,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if input.Role.NeedsBloodType() {
		session.BloodType = input.BloodType
	}
	if input.Role.IsOrganisation() {
		session.OrganizationName = input.OrganizationName
	}

	if err := database.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Registered", zap.String("id", session.ID), zap.String("role", string(session.Role)))
	return session, nil
}

// Login stores a session for the given email and role. There is no account lookup, so a
// donor or recipient who logs in without a blood type cannot match or book anything.
func Login(ctx context.Context, database db.SessionStore, logger *zap.Logger, input Credentials) (*model.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:    uuid.New().String(),
		Role:  input.Role,
		Name:  input.Name,
		Email: input.Email,
	}
	if input.Role.NeedsBloodType() {
		session.BloodType = input.BloodType
	}
	if input.Role.IsOrganisation() {
		session.OrganizationName = input.OrganizationName
	}

	if err := database.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Logged in", zap.String("id", session.ID), zap.String("role", string(session.Role)))
	return session, nil
}

// Logout erases the stored session. Logging out twice is fine.
func Logout(ctx context.Context, database db.SessionStore, logger *zap.Logger) error {
	if err := database.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Logged out")
	return nil
}

// CurrentSession returns the stored session or ErrNoSession
func CurrentSession(ctx context.Context, database db.SessionStore) (*model.Session, error) {
	session, err := database.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// RequireRole returns the session when its role is one of allowed. With no session it returns
// ErrNoSession; with another role it returns ErrForbiddenRole naming the page's audience.
func RequireRole(ctx context.Context, database db.SessionStore, allowed ...model.Role) (*model.Session, error) {
	session, err := CurrentSession(ctx, database)
	if err != nil {
		return nil, err
	}

	if len(allowed) == 0 {
		return session, nil
	}
	for _, role := range allowed {
		if session.Role == role {
			return session, nil
		}
	}

	return nil, fmt.Errorf("%w: this page is only accessible to %ss", ErrForbiddenRole, allowed[0])
}
