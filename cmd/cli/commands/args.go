package commands

import (
	"fmt"
	"strings"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// capitalize maps "fulfilled" or "FULFILLED" to "Fulfilled"
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func parseRole(s string) (model.Role, error) {
	role := model.Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("role must be one of donor, recipient, hospital, bloodbank, got: %s", s)
	}
	return role, nil
}

func parseBloodType(s string) (model.BloodType, error) {
	bt, ok := model.ParseBloodType(s)
	if !ok {
		return "", fmt.Errorf("invalid blood type: %s", s)
	}
	return bt, nil
}

func parseUrgency(s string) (model.Urgency, error) {
	u := model.Urgency(capitalize(s))
	if !u.IsValid() {
		return "", fmt.Errorf("urgency must be one of Critical, Urgent, Normal, got: %s", s)
	}
	return u, nil
}

// Status values are passed through unchecked so the service reports the error
func parseRequestStatus(s string) model.RequestStatus {
	return model.RequestStatus(capitalize(s))
}

func parseAppointmentStatus(s string) model.AppointmentStatus {
	return model.AppointmentStatus(capitalize(s))
}
