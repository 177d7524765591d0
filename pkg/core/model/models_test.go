package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloodType_IsRhPositive(t *testing.T) {
	tests := []struct {
		bloodType BloodType
		expected  bool
	}{
		{BloodTypeAPos, true},
		{BloodTypeANeg, false},
		{BloodTypeBPos, true},
		{BloodTypeBNeg, false},
		{BloodTypeABPos, true},
		{BloodTypeABNeg, false},
		{BloodTypeOPos, true},
		{BloodTypeONeg, false},
		{BloodType("C+"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.bloodType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.bloodType.IsRhPositive())
		})
	}
}

func TestParseBloodType(t *testing.T) {
	tests := []struct {
		input    string
		expected BloodType
		ok       bool
	}{
		{"O-", BloodTypeONeg, true},
		{" ab+ ", BloodTypeABPos, true},
		{"A−", BloodTypeANeg, true},
		{"Z+", BloodType("Z+"), false},
		{"", BloodType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bt, ok := ParseBloodType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, bt)
		})
	}
}

func TestUrgency_Rank(t *testing.T) {
	assert.Greater(t, UrgencyCritical.Rank(), UrgencyUrgent.Rank())
	assert.Greater(t, UrgencyUrgent.Rank(), UrgencyNormal.Rank())
	assert.Equal(t, 0, Urgency("Whenever").Rank())
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     RequestStatus
		to       RequestStatus
		expected bool
	}{
		{"active to fulfilled", RequestActive, RequestFulfilled, true},
		{"active to cancelled", RequestActive, RequestCancelled, true},
		{"active to active", RequestActive, RequestActive, true},
		{"fulfilled to active", RequestFulfilled, RequestActive, false},
		{"cancelled to active", RequestCancelled, RequestActive, false},
		{"fulfilled to cancelled", RequestFulfilled, RequestCancelled, false},
		{"unknown target", RequestActive, RequestStatus("Processing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, AppointmentScheduled.CanTransitionTo(AppointmentCompleted))
	assert.True(t, AppointmentScheduled.CanTransitionTo(AppointmentCancelled))
	assert.False(t, AppointmentCompleted.CanTransitionTo(AppointmentScheduled))
	assert.False(t, AppointmentCancelled.CanTransitionTo(AppointmentCompleted))
	assert.False(t, AppointmentScheduled.CanTransitionTo(AppointmentStatus("")))
}

func TestRole_DashboardPath(t *testing.T) {
	assert.Equal(t, "/donor-dashboard", RoleDonor.DashboardPath())
	assert.Equal(t, "/recipient-dashboard", RoleRecipient.DashboardPath())
	assert.Equal(t, "/hospital-dashboard", RoleHospital.DashboardPath())
	assert.Equal(t, "/bloodbank-dashboard", RoleBloodBank.DashboardPath())
	assert.Equal(t, "/", Role("admin").DashboardPath())
}

func TestSession_DisplayName(t *testing.T) {
	hospital := Session{Role: RoleHospital, Name: "Jo", OrganizationName: "St Mary's Hospital"}
	assert.Equal(t, "St Mary's Hospital", hospital.DisplayName())

	donor := Session{Role: RoleDonor, Name: "Jo", OrganizationName: "ignored"}
	assert.Equal(t, "Jo", donor.DisplayName())

	loginOnly := Session{Role: RoleDonor, Email: "jo@example.com"}
	assert.Equal(t, "jo@example.com", loginOnly.DisplayName())
}

func TestDonationAppointment_Destination(t *testing.T) {
	hospital := DonationAppointment{HospitalID: "1", HospitalName: "General Hospital"}
	assert.True(t, hospital.HasHospital())
	assert.False(t, hospital.HasBloodBank())
	assert.Equal(t, "General Hospital", hospital.Destination())

	bank := DonationAppointment{BloodBankID: "1", BloodBankName: "City Blood Bank"}
	assert.False(t, bank.HasHospital())
	assert.True(t, bank.HasBloodBank())
	assert.Equal(t, "City Blood Bank", bank.Destination())
}
