package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// Drive is a recurring community blood drive
type Drive struct {
	Name     string
	Location string
	Start    time.Time
	RRule    string
}

// DriveOccurrence is one dated instance of a drive
type DriveOccurrence struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

// UpcomingDrives expands each drive's RRULE from its start date and returns the earliest
// occurrences between now and now+horizonDays, at most limit of them
func UpcomingDrives(drives []Drive, now time.Time, horizonDays, limit int) ([]DriveOccurrence, error) {
	until := now.AddDate(0, 0, horizonDays)

	type dated struct {
		at  time.Time
		occ DriveOccurrence
	}
	var all []dated

	for i, drive := range drives {
		opt, err := rrule.StrToROption(drive.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for drive %d (%s): %w", i, drive.Name, err)
		}
		opt.Dtstart = drive.Start

		rule, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("failed to build rrule for drive %d (%s): %w", i, drive.Name, err)
		}

		for _, at := range rule.Between(now, until, true) {
			all = append(all, dated{
				at:  at,
				occ: DriveOccurrence{Name: drive.Name, Location: drive.Location, Date: at.Format("2006-01-02")},
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	out := make([]DriveOccurrence, len(all))
	for i, d := range all {
		out[i] = d.occ
	}
	return out, nil
}
