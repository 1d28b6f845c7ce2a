// -----------------------------------------------------------------------------
// Email Message Builder
// -----------------------------------------------------------------------------
// Bu dosya, email mesajlarını oluşturmak için fluent API sağlar.
//
// Laravel Mail Facade'ine benzer şekilde çalışır:
//
//	message := mail.NewMessage().
//	    From("noreply@rifa-go.local", "Rifa Go").
//	    To("alici@example.com", "").
//	    Subject("Ödemeniz onaylandı").
//	    Body("Numaralarınız: 7, 13, 42")
// -----------------------------------------------------------------------------

package mail

import (
	"errors"
	"fmt"
	"time"
)

// Address, email adresi ve opsiyonel isim içeren yapıdır.
type Address struct {
	Email string // Email adresi (zorunlu)
	Name  string // İsim (opsiyonel)
}

// String, Address'i "Name <email@example.com>" formatında döndürür.
func (a Address) String() string {
	if a.Name != "" {
		return fmt.Sprintf("%s <%s>", a.Name, a.Email)
	}
	return a.Email
}

// Message, email mesajını temsil eder.
//
// Fluent API ile zincirleme kullanım:
//
//	msg := mail.NewMessage().
//	    To("alici@example.com", "").
//	    Subject("Merhaba").
//	    Body("Hoş geldiniz!")
type Message struct {
	from     Address
	to       []Address
	subject  string
	body     string // Plain text body
	htmlBody string // HTML body
	date     time.Time
}

// NewMessage, yeni bir Message instance'ı oluşturur.
func NewMessage() *Message {
	return &Message{
		date: time.Now(),
	}
}

// From, gönderici adresini ayarlar.
func (m *Message) From(email string, name string) *Message {
	m.from = Address{Email: email, Name: name}
	return m
}

// To, alıcı adresini ekler.
//
// Örnek:
//
//	msg.To("alici@example.com", "Maria Silva")
//	msg.To("admin@example.com", "") // İsim olmadan
func (m *Message) To(email string, name string) *Message {
	m.to = append(m.to, Address{Email: email, Name: name})
	return m
}

// Subject, email konusunu ayarlar.
func (m *Message) Subject(subject string) *Message {
	m.subject = subject
	return m
}

// Body, plain text gövdeyi ayarlar.
func (m *Message) Body(body string) *Message {
	m.body = body
	return m
}

// Html, HTML gövdeyi ayarlar.
func (m *Message) Html(html string) *Message {
	m.htmlBody = html
	return m
}

// GetFrom, gönderici adresini döndürür.
func (m *Message) GetFrom() Address {
	return m.from
}

// GetTo, alıcı listesini döndürür.
func (m *Message) GetTo() []Address {
	return m.to
}

// GetSubject, email konusunu döndürür.
func (m *Message) GetSubject() string {
	return m.subject
}

// GetBody, plain text gövdeyi döndürür.
func (m *Message) GetBody() string {
	return m.body
}

// GetHtmlBody, HTML gövdeyi döndürür.
func (m *Message) GetHtmlBody() string {
	return m.htmlBody
}

// Validate, mesajın gönderilebilir olup olmadığını kontrol eder.
func (m *Message) Validate() error {
	if m.from.Email == "" {
		return errors.New("gönderici adresi zorunludur")
	}
	if len(m.to) == 0 {
		return errors.New("en az bir alıcı adresi zorunludur")
	}
	if m.subject == "" {
		return errors.New("email konusu zorunludur")
	}
	if m.body == "" && m.htmlBody == "" {
		return errors.New("email gövdesi zorunludur")
	}
	return nil
}
