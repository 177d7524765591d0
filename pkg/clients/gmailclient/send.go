package gmailclient

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
)

// EmailInterval is the minimum gap between two sends, keeping us inside Gmail's per-user quota
const EmailInterval = 3 * time.Second

// SendEmail sends a plain-text email. Calls are serialised and spaced by EmailInterval.
func (c *Client) SendEmail(to, subject, body string) error {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	c.throttle()

	msg := &gmail.Message{Raw: encodeMessage(c.sender, to, subject, body)}
	if _, err := c.service.Users.Messages.Send("me", msg).Do(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.lastSendTime = c.now()
	return nil
}

// throttle blocks until EmailInterval has passed since the previous send. Caller holds sendMutex.
func (c *Client) throttle() {
	if c.lastSendTime.IsZero() {
		return
	}
	if elapsed := c.now().Sub(c.lastSendTime); elapsed < c.interval {
		c.sleep(c.interval - elapsed)
	}
}

// encodeMessage builds an RFC 2822 message and base64url-encodes it for the Gmail API
func encodeMessage(from, to, subject, body string) string {
	var b strings.Builder
	if from != "" {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
