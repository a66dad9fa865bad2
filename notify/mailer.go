package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// EmailSender sends one HTML email to one recipient.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay. One instance is
// constructed at startup and shared by all requests.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

// NewSMTPMailer builds a mailer from SMTP settings.
func NewSMTPMailer(host, port, username, password, fromName string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		FromName: fromName,
	}
}

// Send delivers an HTML email. When SMTP settings are incomplete the mail
// is logged instead of sent, so non-production environments keep working.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.Host == "" || m.Port == "" || m.Username == "" || m.Password == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", to, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", m.FromName, m.Username)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	if err := smtp.SendMail(addr, auth, m.Username, []string{to}, []byte(sb.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// sanitizeHeader strips CRLF so user-derived values cannot inject headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
