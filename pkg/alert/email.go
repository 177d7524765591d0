package alert

import (
	"context"
	"fmt"
	"strings"
)

// EmailSender is the part of the Gmail client the email sink needs
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// Email forwards alerts to a fixed coordinator address
type Email struct {
	sender EmailSender
	to     string
}

func NewEmail(sender EmailSender, to string) *Email {
	return &Email{sender: sender, to: to}
}

func (e *Email) Alert(ctx context.Context, a Alert) error {
	subject := "[Save A Life] " + a.Title

	var body strings.Builder
	body.WriteString(a.Message)
	body.WriteString("\n\n")
	if a.From != "" {
		fmt.Fprintf(&body, "From: %s\n", a.From)
	}
	fmt.Fprintf(&body, "Type: %s\n", a.Type)

	if err := e.sender.SendEmail(e.to, subject, body.String()); err != nil {
		return fmt.Errorf("failed to email alert to %s: %w", e.to, err)
	}
	return nil
}
