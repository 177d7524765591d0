package alert

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

var (
	toastBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	toastTitle = lipgloss.NewStyle().Bold(true)
	toastBody  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// toastColor picks the border colour for a notification type
func toastColor(t model.NotificationType) lipgloss.Color {
	switch t {
	case model.NotificationEmergency:
		return lipgloss.Color("196")
	case model.NotificationBloodRequest:
		return lipgloss.Color("203")
	case model.NotificationDonationScheduled, model.NotificationAppointment:
		return lipgloss.Color("42")
	}
	return lipgloss.Color("244")
}

// Console renders alerts as a bordered toast on a writer (normally stdout)
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Alert(ctx context.Context, a Alert) error {
	toast := toastBox.BorderForeground(toastColor(a.Type)).Render(
		toastTitle.Render(a.Title) + "\n" + toastBody.Render(a.Message),
	)
	if _, err := fmt.Fprintln(c.out, toast); err != nil {
		return fmt.Errorf("failed to write toast: %w", err)
	}
	return nil
}
