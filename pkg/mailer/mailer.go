package mailer

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Config holds SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS when true, STARTTLS otherwise
	Username string
	Password string
	From     string
}

// Mailer sends plain-text mail over SMTP. A fresh connection is opened per
// message; RFP invitation volume does not justify connection reuse.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether enough settings are present to send mail.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("SMTP is not configured. Please set SMTP_HOST, SMTP_USER, and SMTP_PASS in .env")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var c *smtp.Client
	var err error
	if m.cfg.Secure {
		c, err = smtp.DialTLS(addr, nil)
	} else {
		c, err = smtp.DialStartTLS(addr, nil)
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer c.Close()

	auth := sasl.NewPlainClient("", m.cfg.Username, m.cfg.Password)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	msg := buildMessage(m.cfg.From, to, subject, body)
	if err := c.SendMail(m.cfg.From, []string{to}, strings.NewReader(msg)); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}

	return c.Quit()
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return b.String()
}
