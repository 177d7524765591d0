package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

func TestRequestFromForm(t *testing.T) {
	form := RequestForm{BloodType: model.BloodTypeBNeg, UnitsNeeded: 3, Urgency: model.UrgencyCritical, PatientID: "P-17", Department: "ER"}

	t.Run("hospital", func(t *testing.T) {
		session := model.Session{ID: "h1", Role: model.RoleHospital, Name: "Jo", OrganizationName: "General Hospital"}

		input, err := RequestFromForm(session, form)
		require.NoError(t, err)
		assert.Equal(t, model.RequesterHospital, input.RequesterType)
		assert.Equal(t, "General Hospital", input.RequesterName)
		assert.Equal(t, "General Hospital", input.HospitalName)
		assert.Equal(t, "General Hospital", input.Location)
		assert.Equal(t, "Patient: P-17, Department: ER", input.Description)
	})

	t.Run("recipient", func(t *testing.T) {
		session := model.Session{ID: "r1", Role: model.RoleRecipient, Name: "Alice"}
		f := form
		f.HospitalName = "St Mary's"
		f.Description = "Surgery on Friday"

		input, err := RequestFromForm(session, f)
		require.NoError(t, err)
		assert.Equal(t, model.RequesterRecipient, input.RequesterType)
		assert.Equal(t, "r1", input.RequesterID)
		assert.Equal(t, "St Mary's", input.Location)
		assert.Equal(t, "Surgery on Friday", input.Description)
	})

	t.Run("donor cannot request", func(t *testing.T) {
		_, err := RequestFromForm(model.Session{Role: model.RoleDonor}, form)
		assert.ErrorIs(t, err, ErrForbiddenRole)
	})
}

func TestAppointmentFromForm(t *testing.T) {
	donor := model.Session{ID: "d1", Role: model.RoleDonor, Name: "John Smith", BloodType: model.BloodTypeONeg}

	tests := []struct {
		name          string
		form          DonationForm
		wantHospital  string
		wantBloodBank string
		wantErr       error
	}{
		{"defaults to general hospital", DonationForm{Date: "2024-02-10", Time: "09:00"}, "General Hospital", "", nil},
		{"named hospital", DonationForm{Location: "hospital", Name: "St Mary's"}, "St Mary's", "", nil},
		{"default blood bank", DonationForm{Location: "bloodbank"}, "", "City Blood Bank", nil},
		{"unknown location", DonationForm{Location: "bus"}, "", "", ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := AppointmentFromForm(donor, tt.form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "d1", input.DonorID)
			assert.Equal(t, model.BloodTypeONeg, input.BloodType)
			assert.Equal(t, tt.wantHospital, input.HospitalName)
			assert.Equal(t, tt.wantBloodBank, input.BloodBankName)
			assert.NoError(t, input.validateDestination())
		})
	}

	_, err := AppointmentFromForm(model.Session{Role: model.RoleHospital}, DonationForm{})
	assert.ErrorIs(t, err, ErrForbiddenRole)

	_, err = AppointmentFromForm(model.Session{ID: "d2", Role: model.RoleDonor, Email: "d2@example.com"}, DonationForm{})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "register first")
}
