package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether SMTP settings are present; without them the
// welcome mail is skipped.
func (cfg SMTPConfig) Configured() bool {
	return cfg.Host != "" && cfg.From != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func WelcomeEmailHTML(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Your account is ready. Sign in, create a community, and start inviting members.</p>`, name)
}
