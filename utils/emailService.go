package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lingua/config"
)

// SendEmail relays a plain-text message through the configured SMTP server
func SendEmail(cfg *config.Config, to []string, subject, body string) error {
	from := cfg.EmailSender

	msg := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Lingua <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += body

	auth := smtp.PlainAuth("", from, cfg.EmailPassword, cfg.SMTPHost)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, from, to, []byte(msg)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}
