package services

import (
	"fmt"
	"strings"

	"github.com/jakechorley/save-a-life/pkg/core/directory"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// RequestForm is what a logged-in recipient or hospital fills in to ask for blood.
// Requester fields come from the session.
type RequestForm struct {
	BloodType    model.BloodType `json:"bloodType"`
	UnitsNeeded  int             `json:"unitsNeeded"`
	Urgency      model.Urgency   `json:"urgency"`
	HospitalName string          `json:"hospitalName,omitempty"`
	Description  string          `json:"description,omitempty"`
	PatientID    string          `json:"patientId,omitempty"`
	Department   string          `json:"department,omitempty"`
}

// RequestFromForm fills in the requester from the session. Hospitals request under their
// own name with a patient/department description; recipients name the hospital they are at.
func RequestFromForm(session model.Session, form RequestForm) (NewBloodRequest, error) {
	input := NewBloodRequest{
		RequesterID:   session.ID,
		RequesterName: session.DisplayName(),
		BloodType:     form.BloodType,
		UnitsNeeded:   form.UnitsNeeded,
		Urgency:       form.Urgency,
	}

	switch session.Role {
	case model.RoleHospital:
		input.RequesterType = model.RequesterHospital
		input.HospitalName = session.DisplayName()
		input.Location = session.DisplayName()
		input.Description = form.Description
		if form.PatientID != "" || form.Department != "" {
			input.Description = fmt.Sprintf("Patient: %s, Department: %s", form.PatientID, form.Department)
		}
	case model.RoleRecipient:
		input.RequesterType = model.RequesterRecipient
		input.HospitalName = form.HospitalName
		input.Location = form.HospitalName
		input.Description = form.Description
	default:
		return NewBloodRequest{}, fmt.Errorf("%w: only recipients and hospitals can request blood", ErrForbiddenRole)
	}

	return input, nil
}

// DonationForm is what a donor fills in to book a donation. Location is "hospital" or "bloodbank".
type DonationForm struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Name     string `json:"name,omitempty"`
}

// AppointmentFromForm books the session's donor into a hospital (the default) or a blood bank.
// An empty name falls back to the default place.
func AppointmentFromForm(session model.Session, form DonationForm) (NewAppointment, error) {
	if session.Role != model.RoleDonor {
		return NewAppointment{}, fmt.Errorf("%w: only donors can schedule donations", ErrForbiddenRole)
	}
	if session.BloodType == "" {
		return NewAppointment{}, fmt.Errorf("%w: bloodType is not on the session, log in with a blood type or register first", ErrMissingField)
	}

	input := NewAppointment{
		DonorID:       session.ID,
		DonorName:     session.DisplayName(),
		BloodType:     session.BloodType,
		ScheduledDate: form.Date,
		ScheduledTime: form.Time,
	}

	switch strings.ToLower(form.Location) {
	case "", "hospital":
		place := directory.Hospital(form.Name)
		input.HospitalID, input.HospitalName = place.ID, place.Name
	case "bloodbank", "blood-bank", "blood_bank":
		place := directory.BloodBankPlace(form.Name)
		input.BloodBankID, input.BloodBankName = place.ID, place.Name
	default:
		return NewAppointment{}, fmt.Errorf("%w: location must be hospital or bloodbank", ErrInvalidField)
	}

	return input, nil
}
