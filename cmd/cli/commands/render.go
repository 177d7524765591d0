package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// dashboardListLimit caps each list on the terminal dashboard
const dashboardListLimit = 3

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	badgeStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("231"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func urgencyColor(u model.Urgency) lipgloss.Color {
	switch u {
	case model.UrgencyCritical:
		return lipgloss.Color("196")
	case model.UrgencyUrgent:
		return lipgloss.Color("208")
	}
	return lipgloss.Color("244")
}

func stockColor(s dashboard.StockStatus) lipgloss.Color {
	switch s {
	case dashboard.StockCritical:
		return lipgloss.Color("196")
	case dashboard.StockLow:
		return lipgloss.Color("214")
	}
	return lipgloss.Color("42")
}

func temperatureColor(s dashboard.TemperatureStatus) lipgloss.Color {
	switch s {
	case dashboard.TemperatureCritical:
		return lipgloss.Color("196")
	case dashboard.TemperatureWarning:
		return lipgloss.Color("214")
	}
	return lipgloss.Color("42")
}

func badge(text string, color lipgloss.Color) string {
	return badgeStyle.Background(color).Render(text)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(title))
}

// moreLine reports how many items were cut from a capped list
func moreLine(w io.Writer, total int) {
	if total > dashboardListLimit {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(fmt.Sprintf("... and %d more", total-dashboardListLimit)))
	}
}

func renderRequest(w io.Writer, r model.BloodRequest) {
	fmt.Fprintf(w, "  %s %s x%d  %s  %s\n",
		badge(string(r.Urgency), urgencyColor(r.Urgency)),
		r.BloodType,
		r.UnitsNeeded,
		r.RequesterName,
		dimStyle.Render(fmt.Sprintf("[%s] %s", r.Status, r.ID)),
	)
	if r.HospitalName != "" && r.HospitalName != r.RequesterName {
		fmt.Fprintf(w, "      at %s\n", r.HospitalName)
	}
	if r.Description != "" {
		fmt.Fprintf(w, "      %s\n", dimStyle.Render(r.Description))
	}
}

func renderRequests(w io.Writer, requests []model.BloodRequest, limit int) {
	if len(requests) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("No blood requests"))
		return
	}
	for i, r := range requests {
		if limit > 0 && i == limit {
			break
		}
		renderRequest(w, r)
	}
}

func renderAppointment(w io.Writer, a model.DonationAppointment) {
	fmt.Fprintf(w, "  %s %s  %s (%s) at %s  %s\n",
		a.ScheduledDate,
		a.ScheduledTime,
		a.DonorName,
		a.BloodType,
		a.Destination(),
		dimStyle.Render(fmt.Sprintf("[%s] %s", a.Status, a.ID)),
	)
}

func renderAppointments(w io.Writer, appointments []model.DonationAppointment, limit int) {
	if len(appointments) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("No appointments"))
		return
	}
	for i, a := range appointments {
		if limit > 0 && i == limit {
			break
		}
		renderAppointment(w, a)
	}
}

func renderNotification(w io.Writer, n model.Notification) {
	marker := "•"
	if n.Read {
		marker = " "
	}
	fmt.Fprintf(w, "%s %s  %s\n    %s\n    %s\n",
		marker,
		titleStyle.Render(n.Title),
		dimStyle.Render(fmt.Sprintf("%s %s", n.Type, n.ID)),
		n.Message,
		dimStyle.Render(fmt.Sprintf("from %s at %s", n.From, n.Timestamp)),
	)
}

func renderHeader(w io.Writer, session model.Session, unread int) {
	fmt.Fprintf(w, "%s  %s\n",
		titleStyle.Render(fmt.Sprintf("Welcome, %s", session.DisplayName())),
		badge(string(session.Role), lipgloss.Color("63")),
	)
	if unread > 0 {
		fmt.Fprintf(w, "%s\n", badge(fmt.Sprintf("%d unread", unread), lipgloss.Color("196")))
	}
}

func renderDonorDashboard(w io.Writer, v *dashboard.DonorView) {
	renderHeader(w, v.Session, v.UnreadCount)
	fmt.Fprintf(w, "Blood type: %s\n", v.Session.BloodType)

	section(w, "Eligibility")
	if v.Eligibility.Eligible {
		fmt.Fprintf(w, "  %s\n", okStyle.Render("You are eligible to donate"))
	} else {
		fmt.Fprintf(w, "  %d days until you can donate again (%s)\n",
			v.Eligibility.DaysUntilEligible, v.Eligibility.NextEligible)
	}
	fmt.Fprintf(w, "  Last donation %s, progress %.0f%%\n", v.Eligibility.LastDonation, v.Eligibility.Progress)

	section(w, "Requests you can help with")
	renderRequests(w, v.MatchingRequests, dashboardListLimit)

	section(w, "Your appointments")
	renderAppointments(w, v.Appointments, dashboardListLimit)
	moreLine(w, len(v.Appointments))

	section(w, "Upcoming blood drives")
	if len(v.UpcomingDrives) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("No drives scheduled"))
	}
	for _, d := range v.UpcomingDrives {
		fmt.Fprintf(w, "  %s  %s  %s\n", d.Date, d.Name, dimStyle.Render(d.Location))
	}

	section(w, "Donation history")
	for _, h := range v.History {
		fmt.Fprintf(w, "  %s  %s  %s\n", h.Date, h.Location, dimStyle.Render(h.Status))
	}
}

func renderRecipientDashboard(w io.Writer, v *dashboard.RecipientView) {
	renderHeader(w, v.Session, v.UnreadCount)
	fmt.Fprintf(w, "Blood type: %s\n", v.Session.BloodType)

	section(w, "Your active requests")
	renderRequests(w, v.MyRequests, dashboardListLimit)
	moreLine(w, len(v.MyRequests))

	section(w, "Nearby donors")
	for _, d := range v.NearbyDonors {
		fmt.Fprintf(w, "  %-16s %-4s %.1f km  %s\n", d.Name, d.BloodType, d.DistanceKm,
			dimStyle.Render(fmt.Sprintf("%d donations", d.Donations)))
	}

	section(w, "Blood banks")
	for _, b := range v.BloodBanks {
		fmt.Fprintf(w, "  %s  %s  %s\n", b.Name, b.Location, dimStyle.Render(b.Phone))
	}
}

func renderHospitalDashboard(w io.Writer, v *dashboard.HospitalView) {
	renderHeader(w, v.Session, v.UnreadCount)

	if len(v.CriticalTypes) > 0 {
		types := make([]string, len(v.CriticalTypes))
		for i, bt := range v.CriticalTypes {
			types[i] = string(bt)
		}
		fmt.Fprintf(w, "%s critical stock: %s\n", badge("ALERT", lipgloss.Color("196")), strings.Join(types, ", "))
	}

	section(w, "Blood requests")
	renderRequests(w, v.Requests, dashboardListLimit)
	moreLine(w, len(v.Requests))

	section(w, "Donation appointments")
	renderAppointments(w, v.Appointments, dashboardListLimit)
	moreLine(w, len(v.Appointments))

	section(w, "Inventory")
	for _, row := range v.Inventory {
		fmt.Fprintf(w, "  %-4s %3d / %-3d %5.1f%%  %s\n",
			row.BloodType, row.Current, row.Minimum, row.Percentage,
			badge(string(row.Status), stockColor(row.Status)))
	}
}

func renderBloodBankDashboard(w io.Writer, v *dashboard.BloodBankView) {
	renderHeader(w, v.Session, v.UnreadCount)
	fmt.Fprintf(w, "Total units: %d, expiring soon: %d\n", v.TotalUnits, v.TotalExpiring)

	section(w, "Active requests")
	renderRequests(w, v.Requests, dashboardListLimit)
	moreLine(w, len(v.Requests))

	section(w, "Donation appointments")
	renderAppointments(w, v.Appointments, dashboardListLimit)
	moreLine(w, len(v.Appointments))

	section(w, "Inventory")
	for _, row := range v.Inventory {
		fmt.Fprintf(w, "  %-4s %3d units  %2d expiring  %4.1f°C %s\n",
			row.BloodType, row.Units, row.Expiring, row.Temperature,
			badge(string(row.TemperatureStatus), temperatureColor(row.TemperatureStatus)))
	}
}

// renderDashboard writes whichever view ForRole produced
func renderDashboard(w io.Writer, view any) error {
	switch v := view.(type) {
	case *dashboard.DonorView:
		renderDonorDashboard(w, v)
	case *dashboard.RecipientView:
		renderRecipientDashboard(w, v)
	case *dashboard.HospitalView:
		renderHospitalDashboard(w, v)
	case *dashboard.BloodBankView:
		renderBloodBankDashboard(w, v)
	default:
		return fmt.Errorf("unsupported dashboard view %T", view)
	}
	return nil
}
