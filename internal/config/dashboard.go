package config

import (
	"fmt"
	"time"

	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// DashboardOptions converts the eligibility, drive and inventory sections for the dashboards.
// Inventory sections left empty keep the built-in tables.
func (cfg *Config) DashboardOptions() (dashboard.Options, error) {
	opts := dashboard.DefaultOptions()

	last, err := cfg.LastDonation()
	if err != nil {
		return opts, err
	}
	opts.LastDonation = last
	if cfg.Eligibility.IntervalDays > 0 {
		opts.IntervalDays = cfg.Eligibility.IntervalDays
	}

	for i, d := range cfg.BloodDrives {
		start, err := time.Parse("2006-01-02", d.Start)
		if err != nil {
			return opts, fmt.Errorf("invalid start in bloodDrives[%d]: %w", i, err)
		}
		opts.Drives = append(opts.Drives, dashboard.Drive{
			Name:     d.Name,
			Location: d.Location,
			Start:    start,
			RRule:    d.RRule,
		})
	}

	if len(cfg.HospitalInventory) > 0 {
		opts.HospitalInventory = make([]dashboard.HospitalStock, len(cfg.HospitalInventory))
		for i, s := range cfg.HospitalInventory {
			opts.HospitalInventory[i] = dashboard.HospitalStock{
				BloodType: model.BloodType(s.BloodType),
				Current:   s.Current,
				Minimum:   s.Minimum,
			}
		}
	}

	if len(cfg.BloodBankInventory) > 0 {
		opts.BloodBankInventory = make([]dashboard.BankStock, len(cfg.BloodBankInventory))
		for i, s := range cfg.BloodBankInventory {
			opts.BloodBankInventory[i] = dashboard.BankStock{
				BloodType:   model.BloodType(s.BloodType),
				Units:       s.Units,
				Expiring:    s.Expiring,
				Temperature: s.Temperature,
			}
		}
	}

	return opts, nil
}
