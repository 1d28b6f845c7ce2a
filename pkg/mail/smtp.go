// -----------------------------------------------------------------------------
// SMTP Mailer Driver
// -----------------------------------------------------------------------------
// Bu dosya, SMTP protokolü üzerinden email gönderimi yapar.
// MIME encode işi jordan-wright/email kütüphanesine bırakılmıştır.
//
// Desteklenen SMTP Servisleri:
// - Gmail (smtp.gmail.com:587)
// - Mailhog (localhost:1025 - development)
// - SendGrid (smtp.sendgrid.net:587)
// - Custom SMTP servers
//
// Kullanım:
//
//	config := &mail.SMTPConfig{
//	    Host:     "smtp.gmail.com",
//	    Port:     587,
//	    Username: "your@gmail.com",
//	    Password: "app-password",
//	    From:     mail.Address{Email: "noreply@rifa-go.local", Name: "Rifa Go"},
//	}
//	mailer := mail.NewSMTPMailer(config, logger)
// -----------------------------------------------------------------------------

package mail

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// SMTPConfig, SMTP bağlantı ayarlarını içerir.
type SMTPConfig struct {
	Host     string  // SMTP sunucu adresi (örn: smtp.gmail.com)
	Port     int     // SMTP port (25, 587, 465)
	Username string  // SMTP kullanıcı adı
	Password string  // SMTP şifre
	From     Address // Varsayılan gönderici adresi
}

// SMTPMailer, SMTP ile email gönderen mailer.
type SMTPMailer struct {
	*BaseMailer
	config *SMTPConfig
}

// NewSMTPMailer, yeni bir SMTP mailer oluşturur.
//
// Örnek (Mailhog - Development):
//
//	config := &mail.SMTPConfig{
//	    Host: "localhost",
//	    Port: 1025,
//	    From: mail.Address{Email: "dev@rifa-go.local"},
//	}
//	mailer := mail.NewSMTPMailer(config, logger)
func NewSMTPMailer(config *SMTPConfig, logger Logger) *SMTPMailer {
	return &SMTPMailer{
		BaseMailer: NewBaseMailer(logger),
		config:     config,
	}
}

// Send, mesajı SMTP üzerinden gönderir.
func (m *SMTPMailer) Send(message *Message) error {
	// Gönderici belirtilmemişse config'teki varsayılanı kullan
	if message.GetFrom().Email == "" {
		message.From(m.config.From.Email, m.config.From.Name)
	}

	if err := m.ValidateMessage(message); err != nil {
		return fmt.Errorf("message validation failed: %w", err)
	}

	m.LogSending(message)

	e := email.NewEmail()
	e.From = message.GetFrom().String()
	for _, to := range message.GetTo() {
		e.To = append(e.To, to.String())
	}
	e.Subject = message.GetSubject()
	if body := message.GetBody(); body != "" {
		e.Text = []byte(body)
	}
	if html := message.GetHtmlBody(); html != "" {
		e.HTML = []byte(html)
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	// Auth bilgisi yoksa (Mailhog gibi) auth'suz gönder
	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := e.Send(addr, auth); err != nil {
		m.LogError(message, err)
		return fmt.Errorf("email gönderilemedi: %w", err)
	}

	m.LogSuccess(message)
	return nil
}
