package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/save-a-life/pkg/core/directory"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// Input is what every view is derived from
type Input struct {
	Session       model.Session
	Requests      []model.BloodRequest
	Appointments  []model.DonationAppointment
	Notifications []model.Notification
	Now           time.Time
}

func (in Input) unread() int {
	count := 0
	for _, n := range in.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// DonationRecord is one past donation on the donor dashboard
type DonationRecord struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// DonationHistory is the donor's fixed donation record
func DonationHistory() []DonationRecord {
	return []DonationRecord{
		{Date: "2024-01-15", Location: "City Hospital", Status: "Completed"},
		{Date: "2023-11-10", Location: "Blood Bank Center", Status: "Completed"},
		{Date: "2023-08-22", Location: "Community Drive", Status: "Completed"},
	}
}

type DonorView struct {
	Session          model.Session               `json:"session"`
	MatchingRequests []model.BloodRequest        `json:"matchingRequests"`
	Appointments     []model.DonationAppointment `json:"appointments"`
	Eligibility      Eligibility                 `json:"eligibility"`
	History          []DonationRecord            `json:"history"`
	UpcomingDrives   []DriveOccurrence           `json:"upcomingDrives"`
	UnreadCount      int                         `json:"unreadCount"`
}

type RecipientView struct {
	Session      model.Session           `json:"session"`
	MyRequests   []model.BloodRequest    `json:"myRequests"`
	NearbyDonors []directory.NearbyDonor `json:"nearbyDonors"`
	BloodBanks   []directory.BloodBank   `json:"bloodBanks"`
	UnreadCount  int                     `json:"unreadCount"`
}

type HospitalView struct {
	Session       model.Session               `json:"session"`
	Requests      []model.BloodRequest        `json:"requests"`
	Appointments  []model.DonationAppointment `json:"appointments"`
	Inventory     []HospitalStockRow          `json:"inventory"`
	CriticalTypes []model.BloodType           `json:"criticalTypes"`
	UnreadCount   int                         `json:"unreadCount"`
}

type BloodBankView struct {
	Session       model.Session               `json:"session"`
	Requests      []model.BloodRequest        `json:"requests"`
	Appointments  []model.DonationAppointment `json:"appointments"`
	Inventory     []BankStockRow              `json:"inventory"`
	TotalUnits    int                         `json:"totalUnits"`
	TotalExpiring int                         `json:"totalExpiring"`
	UnreadCount   int                         `json:"unreadCount"`
}

// Donor shows Active requests the donor can give to (at most MatchingRequestLimit),
// their appointments, eligibility countdown and the upcoming drives
func Donor(in Input, opts Options) (*DonorView, error) {
	opts = opts.withDefaults()

	matching := []model.BloodRequest{}
	for _, r := range in.Requests {
		if r.Status == model.RequestActive && CanDonateTo(in.Session.BloodType, r.BloodType) {
			matching = append(matching, r)
			if len(matching) == MatchingRequestLimit {
				break
			}
		}
	}

	appointments := []model.DonationAppointment{}
	for _, a := range in.Appointments {
		if a.DonorID == in.Session.ID || (a.DonorName != "" && a.DonorName == in.Session.Name) {
			appointments = append(appointments, a)
		}
	}

	drives, err := UpcomingDrives(opts.Drives, in.Now, opts.DriveHorizonDays, opts.MaxDrives)
	if err != nil {
		return nil, fmt.Errorf("failed to expand blood drives: %w", err)
	}

	return &DonorView{
		Session:          in.Session,
		MatchingRequests: matching,
		Appointments:     appointments,
		Eligibility:      ComputeEligibility(opts.LastDonation, opts.IntervalDays, in.Now),
		History:          DonationHistory(),
		UpcomingDrives:   drives,
		UnreadCount:      in.unread(),
	}, nil
}

// Recipient shows the session's own Active requests plus the donor and blood bank directories
func Recipient(in Input) *RecipientView {
	mine := []model.BloodRequest{}
	for _, r := range in.Requests {
		if r.RequesterID == in.Session.ID && r.Status == model.RequestActive {
			mine = append(mine, r)
		}
	}

	return &RecipientView{
		Session:      in.Session,
		MyRequests:   mine,
		NearbyDonors: directory.NearbyDonors(),
		BloodBanks:   directory.BloodBanks(),
		UnreadCount:  in.unread(),
	}
}

// IsHospitalRequest matches requests raised by hospitals or naming a hospital
func IsHospitalRequest(r model.BloodRequest) bool {
	return r.RequesterType == model.RequesterHospital ||
		strings.Contains(strings.ToLower(r.HospitalName), "hospital")
}

// Hospital shows hospital requests, hospital appointments and the classified inventory
func Hospital(in Input, opts Options) *HospitalView {
	opts = opts.withDefaults()

	requests := []model.BloodRequest{}
	for _, r := range in.Requests {
		if IsHospitalRequest(r) {
			requests = append(requests, r)
		}
	}

	appointments := []model.DonationAppointment{}
	for _, a := range in.Appointments {
		if a.HasHospital() {
			appointments = append(appointments, a)
		}
	}

	inventory := classifyHospital(opts.HospitalInventory)
	critical := []model.BloodType{}
	for _, row := range inventory {
		if row.Status == StockCritical {
			critical = append(critical, row.BloodType)
		}
	}

	return &HospitalView{
		Session:       in.Session,
		Requests:      requests,
		Appointments:  appointments,
		Inventory:     inventory,
		CriticalTypes: critical,
		UnreadCount:   in.unread(),
	}
}

// BloodBank shows every Active request, blood bank appointments and the classified inventory
func BloodBank(in Input, opts Options) *BloodBankView {
	opts = opts.withDefaults()

	requests := []model.BloodRequest{}
	for _, r := range in.Requests {
		if r.Status == model.RequestActive {
			requests = append(requests, r)
		}
	}

	appointments := []model.DonationAppointment{}
	for _, a := range in.Appointments {
		if a.HasBloodBank() {
			appointments = append(appointments, a)
		}
	}

	inventory, units, expiring := classifyBank(opts.BloodBankInventory)

	return &BloodBankView{
		Session:       in.Session,
		Requests:      requests,
		Appointments:  appointments,
		Inventory:     inventory,
		TotalUnits:    units,
		TotalExpiring: expiring,
		UnreadCount:   in.unread(),
	}
}

// ForRole builds the dashboard for the session's role
func ForRole(in Input, opts Options) (any, error) {
	switch in.Session.Role {
	case model.RoleDonor:
		view, err := Donor(in, opts)
		if err != nil {
			return nil, err
		}
		return view, nil
	case model.RoleRecipient:
		return Recipient(in), nil
	case model.RoleHospital:
		return Hospital(in, opts), nil
	case model.RoleBloodBank:
		return BloodBank(in, opts), nil
	}
	return nil, fmt.Errorf("no dashboard for role %q", in.Session.Role)
}
