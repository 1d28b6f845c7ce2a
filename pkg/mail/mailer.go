// -----------------------------------------------------------------------------
// Mail Package - Laravel-Inspired Email System
// -----------------------------------------------------------------------------
// Bu package, email gönderimi için Laravel Mail Facade'ine benzer bir
// interface sağlar.
//
// Özellikler:
// - SMTP driver desteği (jordan-wright/email tabanlı)
// - Fluent message builder
// - Log driver (development)
//
// Kullanım:
//
//	mailer := mail.NewSMTPMailer(config, logger)
//	message := mail.NewMessage().
//	    From("noreply@rifa-go.local", "Rifa Go").
//	    To("alici@example.com", "").
//	    Subject("Ödemeniz onaylandı").
//	    Body("Numaralarınız: 7, 13, 42")
//	err := mailer.Send(message)
// -----------------------------------------------------------------------------

package mail

import (
	"fmt"
	"strings"
)

// Mailer, email gönderim interface'i.
//
// Farklı driver'lar (SMTP, Log, vb.) bu interface'i implement ederek
// sistemle entegre olabilir.
type Mailer interface {
	// Send, bir email mesajı gönderir.
	Send(message *Message) error
}

// Logger interface - dependency injection için
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// BaseMailer, tüm mailer implementasyonları için temel yapı.
//
// Bu yapı ortak fonksiyonları sağlar, her driver bu yapıyı embed eder.
type BaseMailer struct {
	logger Logger
}

// NewBaseMailer, yeni bir BaseMailer oluşturur.
func NewBaseMailer(logger Logger) *BaseMailer {
	return &BaseMailer{
		logger: logger,
	}
}

// ValidateMessage, mesajı validate eder.
func (m *BaseMailer) ValidateMessage(message *Message) error {
	return message.Validate()
}

// LogSending, gönderim işlemini loglar.
func (m *BaseMailer) LogSending(message *Message) {
	m.logger.Printf("📧 Sending email to: %s", message.GetTo()[0].Email)
	m.logger.Printf("   Subject: %s", message.GetSubject())
	m.logger.Printf("   From: %s", message.GetFrom().String())
}

// LogSuccess, başarılı gönderimi loglar.
func (m *BaseMailer) LogSuccess(message *Message) {
	m.logger.Printf("✅ Email sent successfully to: %s", message.GetTo()[0].Email)
}

// LogError, hata oluştuğunda loglar.
func (m *BaseMailer) LogError(message *Message, err error) {
	m.logger.Printf("❌ Email send failed to: %s - Error: %v", message.GetTo()[0].Email, err)
}

// -----------------------------------------------------------------------------
// Log Mailer (Development/Testing için)
// -----------------------------------------------------------------------------

// LogMailer, email'leri göndermek yerine loglara yazan mailer.
//
// Development ve test ortamında kullanışlıdır.
// Gerçek email gönderilmez, sadece log'a yazılır.
type LogMailer struct {
	*BaseMailer
}

// NewLogMailer, yeni bir LogMailer oluşturur.
func NewLogMailer(logger Logger) *LogMailer {
	return &LogMailer{
		BaseMailer: NewBaseMailer(logger),
	}
}

// Send, email'i loglara yazar (gerçek gönderim yapmaz).
func (m *LogMailer) Send(message *Message) error {
	if err := m.ValidateMessage(message); err != nil {
		return fmt.Errorf("message validation failed: %w", err)
	}

	m.logger.Println("\n" + strings.Repeat("=", 70))
	m.logger.Println("📧 EMAIL (log driver)")
	m.logger.Println(strings.Repeat("=", 70))
	m.logger.Printf("From:    %s", message.GetFrom().String())
	for _, to := range message.GetTo() {
		m.logger.Printf("To:      %s", to.String())
	}
	m.logger.Printf("Subject: %s", message.GetSubject())
	m.logger.Println(strings.Repeat("-", 70))
	m.logger.Println(message.GetBody())
	m.logger.Println(strings.Repeat("=", 70))

	return nil
}
