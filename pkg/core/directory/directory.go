// Package directory holds the static donor and blood bank listings used by the
// recipient search and the scheduling defaults.
package directory

import (
	"slices"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// Donor is a searchable donor listing
type Donor struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BloodType    model.BloodType `json:"bloodType"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	Availability string          `json:"availability"`
}

// BloodBank is a blood bank listing with a partial stock summary
type BloodBank struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Location  string                  `json:"location"`
	Phone     string                  `json:"phone"`
	Inventory map[model.BloodType]int `json:"inventory"`
}

// NearbyDonor is the short-form listing on the recipient dashboard
type NearbyDonor struct {
	Name       string          `json:"name"`
	BloodType  model.BloodType `json:"bloodType"`
	DistanceKm float64         `json:"distanceKm"`
	Donations  int             `json:"donations"`
}

// Place is a hospital or blood bank an appointment can target
type Place struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	DefaultHospital  = Place{ID: "1", Name: "General Hospital"}
	DefaultBloodBank = Place{ID: "1", Name: "City Blood Bank"}
)

// Hospital returns the default hospital, renamed when name is given
func Hospital(name string) Place {
	if name == "" {
		return DefaultHospital
	}
	return Place{ID: DefaultHospital.ID, Name: name}
}

// BloodBankPlace returns the default blood bank, renamed when name is given
func BloodBankPlace(name string) Place {
	if name == "" {
		return DefaultBloodBank
	}
	return Place{ID: DefaultBloodBank.ID, Name: name}
}

var donors = []Donor{
	{ID: "1", Name: "John Smith", BloodType: model.BloodTypeONeg, Phone: "+1234567890", Location: "Downtown, 2.1 km", Availability: "Available"},
	{ID: "2", Name: "Sarah Johnson", BloodType: model.BloodTypeONeg, Phone: "+1234567891", Location: "Midtown, 4.8 km", Availability: "Available"},
	{ID: "3", Name: "Mike Davis", BloodType: model.BloodTypeAPos, Phone: "+1234567892", Location: "Uptown, 6.2 km", Availability: "Available"},
	{ID: "4", Name: "Emily Wilson", BloodType: model.BloodTypeBPos, Phone: "+1234567893", Location: "East Side, 3.5 km", Availability: "Available"},
	{ID: "5", Name: "David Brown", BloodType: model.BloodTypeABPos, Phone: "+1234567894", Location: "West Side, 5.1 km", Availability: "Available"},
}

var bloodBanks = []BloodBank{
	{ID: "1", Name: "City Blood Bank", Location: "Main Street, 1.2 km", Phone: "+1234560000",
		Inventory: map[model.BloodType]int{model.BloodTypeONeg: 15, model.BloodTypeAPos: 20, model.BloodTypeBPos: 18}},
	{ID: "2", Name: "Regional Blood Center", Location: "Health District, 2.8 km", Phone: "+1234560001",
		Inventory: map[model.BloodType]int{model.BloodTypeONeg: 8, model.BloodTypeAPos: 25, model.BloodTypeBPos: 12}},
	{ID: "3", Name: "Community Blood Bank", Location: "Community Center, 4.1 km", Phone: "+1234560002",
		Inventory: map[model.BloodType]int{model.BloodTypeONeg: 12, model.BloodTypeAPos: 15, model.BloodTypeBPos: 22}},
}

var nearbyDonors = []NearbyDonor{
	{Name: "John D.", BloodType: model.BloodTypeONeg, DistanceKm: 2.1, Donations: 5},
	{Name: "Sarah M.", BloodType: model.BloodTypeONeg, DistanceKm: 4.8, Donations: 8},
	{Name: "Mike R.", BloodType: model.BloodTypeOPos, DistanceKm: 6.2, Donations: 12},
}

// SearchDonors returns donors with exactly bloodType. An empty type returns everyone.
func SearchDonors(bloodType model.BloodType) []Donor {
	var out []Donor
	for _, d := range donors {
		if bloodType == "" || d.BloodType == bloodType {
			out = append(out, d)
		}
	}
	return out
}

// BloodBanks returns every listed blood bank
func BloodBanks() []BloodBank {
	out := make([]BloodBank, len(bloodBanks))
	for i, b := range bloodBanks {
		b.Inventory = cloneInventory(b.Inventory)
		out[i] = b
	}
	return out
}

// NearbyDonors returns the recipient dashboard's nearby donor list
func NearbyDonors() []NearbyDonor {
	return slices.Clone(nearbyDonors)
}

func cloneInventory(in map[model.BloodType]int) map[model.BloodType]int {
	out := make(map[model.BloodType]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
