package dashboard

import (
	"math"
	"time"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// Eligibility is the donor's countdown to their next permitted donation
type Eligibility struct {
	LastDonation      string  `json:"lastDonation"`
	NextEligible      string  `json:"nextEligible"`
	DaysUntilEligible int     `json:"daysUntilEligible"`
	Eligible          bool    `json:"eligible"`
	Progress          float64 `json:"progress"`
}

// ComputeEligibility counts whole days (rounded up) from now to lastDonation + intervalDays,
// clamped at zero. The last donation is read as a calendar date in now's location.
func ComputeEligibility(lastDonation time.Time, intervalDays int, now time.Time) Eligibility {
	last := time.Date(lastDonation.Year(), lastDonation.Month(), lastDonation.Day(), 0, 0, 0, 0, now.Location())
	next := last.AddDate(0, 0, intervalDays)

	days := int(math.Ceil(next.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}

	progress := 100 - float64(days)/float64(intervalDays)*100
	if progress < 0 {
		progress = 0
	}

	return Eligibility{
		LastDonation:      last.Format("2006-01-02"),
		NextEligible:      next.Format("2006-01-02"),
		DaysUntilEligible: days,
		Eligible:          days == 0,
		Progress:          progress,
	}
}

// CanDonateTo reports whether a donor's blood is offered against a request of the given type:
// an exact match, a universal O- donor, or an O+ donor for any Rh-positive request
func CanDonateTo(donor, requested model.BloodType) bool {
	switch {
	case donor == requested:
		return true
	case donor == model.BloodTypeONeg:
		return true
	case donor == model.BloodTypeOPos:
		return requested.IsRhPositive()
	}
	return false
}
