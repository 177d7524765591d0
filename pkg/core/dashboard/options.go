// Package dashboard derives the four role dashboards from the stored collections.
// Everything here is a pure function of its inputs and the supplied time.
package dashboard

import (
	"time"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

const (
	DefaultIntervalDays     = 56
	DefaultDriveHorizonDays = 90
	DefaultMaxDrives        = 3
	// MatchingRequestLimit caps the donor's matching request list
	MatchingRequestLimit = 3
)

// DefaultLastDonation is the reference donation date used when none is configured
var DefaultLastDonation = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

// Options carries the configurable inputs of the dashboards
type Options struct {
	IntervalDays       int
	LastDonation       time.Time
	Drives             []Drive
	DriveHorizonDays   int
	MaxDrives          int
	HospitalInventory  []HospitalStock
	BloodBankInventory []BankStock
}

// DefaultOptions returns the built-in stock tables and eligibility reference
func DefaultOptions() Options {
	return Options{
		IntervalDays:       DefaultIntervalDays,
		LastDonation:       DefaultLastDonation,
		DriveHorizonDays:   DefaultDriveHorizonDays,
		MaxDrives:          DefaultMaxDrives,
		HospitalInventory:  DefaultHospitalInventory(),
		BloodBankInventory: DefaultBloodBankInventory(),
	}
}

// DefaultHospitalInventory is the hospital's on-hand stock against its minimum levels
func DefaultHospitalInventory() []HospitalStock {
	return []HospitalStock{
		{BloodType: model.BloodTypeAPos, Current: 15, Minimum: 10},
		{BloodType: model.BloodTypeANeg, Current: 4, Minimum: 8},
		{BloodType: model.BloodTypeBPos, Current: 12, Minimum: 10},
		{BloodType: model.BloodTypeBNeg, Current: 2, Minimum: 6},
		{BloodType: model.BloodTypeABPos, Current: 8, Minimum: 5},
		{BloodType: model.BloodTypeABNeg, Current: 3, Minimum: 4},
		{BloodType: model.BloodTypeOPos, Current: 18, Minimum: 15},
		{BloodType: model.BloodTypeONeg, Current: 6, Minimum: 12},
	}
}

// DefaultBloodBankInventory is the blood bank's stored units with fridge temperatures
func DefaultBloodBankInventory() []BankStock {
	return []BankStock{
		{BloodType: model.BloodTypeAPos, Units: 45, Expiring: 5, Temperature: 4.2},
		{BloodType: model.BloodTypeANeg, Units: 23, Expiring: 2, Temperature: 4.1},
		{BloodType: model.BloodTypeBPos, Units: 38, Expiring: 8, Temperature: 4.3},
		{BloodType: model.BloodTypeBNeg, Units: 15, Expiring: 1, Temperature: 4.0},
		{BloodType: model.BloodTypeABPos, Units: 28, Expiring: 3, Temperature: 4.2},
		{BloodType: model.BloodTypeABNeg, Units: 12, Expiring: 1, Temperature: 4.1},
		{BloodType: model.BloodTypeOPos, Units: 52, Expiring: 6, Temperature: 4.2},
		{BloodType: model.BloodTypeONeg, Units: 31, Expiring: 4, Temperature: 4.0},
	}
}

func (o Options) withDefaults() Options {
	if o.IntervalDays <= 0 {
		o.IntervalDays = DefaultIntervalDays
	}
	if o.LastDonation.IsZero() {
		o.LastDonation = DefaultLastDonation
	}
	if o.DriveHorizonDays <= 0 {
		o.DriveHorizonDays = DefaultDriveHorizonDays
	}
	if o.MaxDrives <= 0 {
		o.MaxDrives = DefaultMaxDrives
	}
	if o.HospitalInventory == nil {
		o.HospitalInventory = DefaultHospitalInventory()
	}
	if o.BloodBankInventory == nil {
		o.BloodBankInventory = DefaultBloodBankInventory()
	}
	return o
}
