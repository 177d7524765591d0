package model

import "encoding/json"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleHospital  Role = "hospital"
	RoleBloodBank Role = "bloodbank"
)

func (r Role) IsValid() bool {
	return r == RoleDonor || r == RoleRecipient || r == RoleHospital || r == RoleBloodBank
}

// IsOrganisation reports whether the role registers with an organisation name
func (r Role) IsOrganisation() bool {
	return r == RoleHospital || r == RoleBloodBank
}

// NeedsBloodType reports whether the role registers with a personal blood type
func (r Role) NeedsBloodType() bool {
	return r == RoleDonor || r == RoleRecipient
}

// DashboardPath returns the navigation route for the role's dashboard
func (r Role) DashboardPath() string {
	switch r {
	case RoleDonor:
		return "/donor-dashboard"
	case RoleRecipient:
		return "/recipient-dashboard"
	case RoleHospital:
		return "/hospital-dashboard"
	case RoleBloodBank:
		return "/bloodbank-dashboard"
	}
	return "/"
}

type RequesterType string

const (
	RequesterRecipient RequesterType = "recipient"
	RequesterHospital  RequesterType = "hospital"
)

func (r RequesterType) IsValid() bool {
	return r == RequesterRecipient || r == RequesterHospital
}

type RequestStatus string

const (
	RequestActive    RequestStatus = "Active"
	RequestFulfilled RequestStatus = "Fulfilled"
	RequestCancelled RequestStatus = "Cancelled"
)

func (s RequestStatus) IsValid() bool {
	return s == RequestActive || s == RequestFulfilled || s == RequestCancelled
}

// CanTransitionTo allows only Active -> Fulfilled and Active -> Cancelled.
// Re-applying the current status is accepted.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == RequestActive && (next == RequestFulfilled || next == RequestCancelled)
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

func (s AppointmentStatus) IsValid() bool {
	return s == AppointmentScheduled || s == AppointmentCompleted || s == AppointmentCancelled
}

// CanTransitionTo allows only Scheduled -> Completed and Scheduled -> Cancelled
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == AppointmentScheduled && (next == AppointmentCompleted || next == AppointmentCancelled)
}

// BloodRequest represents one outstanding ask for blood units
type BloodRequest struct {
	ID            string        `json:"id"`
	RequesterID   string        `json:"requesterId"`
	RequesterName string        `json:"requesterName"`
	RequesterType RequesterType `json:"requesterType"`
	BloodType     BloodType     `json:"bloodType"`
	UnitsNeeded   int           `json:"unitsNeeded"`
	Urgency       Urgency       `json:"urgency"`
	HospitalName  string        `json:"hospitalName,omitempty"`
	Description   string        `json:"description,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"` // RFC3339
	Location      string        `json:"location,omitempty"`
}

// DonationAppointment represents a scheduled donor visit.
// Exactly one of the hospital or blood bank references is set.
type DonationAppointment struct {
	ID            string            `json:"id"`
	DonorID       string            `json:"donorId"`
	DonorName     string            `json:"donorName"`
	BloodType     BloodType         `json:"bloodType"`
	HospitalID    string            `json:"hospitalId,omitempty"`
	HospitalName  string            `json:"hospitalName,omitempty"`
	BloodBankID   string            `json:"bloodBankId,omitempty"`
	BloodBankName string            `json:"bloodBankName,omitempty"`
	ScheduledDate string            `json:"scheduledDate"` // Date format
	ScheduledTime string            `json:"scheduledTime"` // HH:MM
	Status        AppointmentStatus `json:"status"`
	CreatedAt     string            `json:"createdAt"`
}

// HasHospital reports whether the appointment targets a hospital
func (a DonationAppointment) HasHospital() bool {
	return a.HospitalID != "" || a.HospitalName != ""
}

// HasBloodBank reports whether the appointment targets a blood bank
func (a DonationAppointment) HasBloodBank() bool {
	return a.BloodBankID != "" || a.BloodBankName != ""
}

// Destination returns the display name of wherever the donation happens
func (a DonationAppointment) Destination() string {
	if a.HospitalName != "" {
		return a.HospitalName
	}
	return a.BloodBankName
}

type NotificationType string

const (
	NotificationBloodRequest      NotificationType = "blood_request"
	NotificationDonationScheduled NotificationType = "donation_scheduled"
	NotificationEmergency         NotificationType = "emergency"
	NotificationAppointment       NotificationType = "appointment"
	NotificationGeneral           NotificationType = "general"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationBloodRequest, NotificationDonationScheduled, NotificationEmergency,
		NotificationAppointment, NotificationGeneral:
		return true
	}
	return false
}

// Notification is immutable once created apart from Read, which only goes false -> true
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	From      string           `json:"from"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
	Data      json.RawMessage  `json:"data,omitempty"`
}

// Session is the locally stored record of the current user
type Session struct {
	ID               string    `json:"id"`
	Role             Role      `json:"userType"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	BloodType        BloodType `json:"bloodType,omitempty"`
	OrganizationName string    `json:"organizationName,omitempty"`
}

// DisplayName prefers the organisation name for hospitals and blood banks
func (s Session) DisplayName() string {
	if s.Role.IsOrganisation() && s.OrganizationName != "" {
		return s.OrganizationName
	}
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}
