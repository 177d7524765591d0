package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

func TestSearchDonors(t *testing.T) {
	tests := []struct {
		bloodType model.BloodType
		want      []string
	}{
		{"", []string{"John Smith", "Sarah Johnson", "Mike Davis", "Emily Wilson", "David Brown"}},
		{model.BloodTypeONeg, []string{"John Smith", "Sarah Johnson"}},
		{model.BloodTypeABPos, []string{"David Brown"}},
		{model.BloodTypeBNeg, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.bloodType), func(t *testing.T) {
			var names []string
			for _, d := range SearchDonors(tt.bloodType) {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestBloodBanks_ReturnsCopies(t *testing.T) {
	banks := BloodBanks()
	require.Len(t, banks, 3)
	assert.Equal(t, 15, banks[0].Inventory[model.BloodTypeONeg])

	banks[0].Inventory[model.BloodTypeONeg] = 0
	assert.Equal(t, 15, BloodBanks()[0].Inventory[model.BloodTypeONeg])
}

func TestPlaces(t *testing.T) {
	assert.Equal(t, DefaultHospital, Hospital(""))
	assert.Equal(t, Place{ID: "1", Name: "St Mary's Hospital"}, Hospital("St Mary's Hospital"))
	assert.Equal(t, "City Blood Bank", BloodBankPlace("").Name)
	assert.Len(t, NearbyDonors(), 3)
}
