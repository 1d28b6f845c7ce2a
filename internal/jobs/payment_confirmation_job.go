// -----------------------------------------------------------------------------
// Payment Confirmation Job
// -----------------------------------------------------------------------------
// Webhook'ta ödeme onaylandığında kuyruğa atılır; alıcıya numaralarını
// listeleyen onay e-postası gönderir. Mail sunucusu yavaşsa veya düşerse
// webhook yanıtını geciktirmez.
// -----------------------------------------------------------------------------

package jobs

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/pkg/mail"
	"github.com/biyonik/raffle-pix-api/pkg/queue"
)

// PaymentConfirmationJob, ödeme onay e-postası gönderen job.
type PaymentConfirmationJob struct {
	queue.BaseJob

	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	RaffleName string `json:"raffle_name"`
	Numbers    []int  `json:"numbers"`
	PaymentID  string `json:"payment_id"`

	mailer    mail.Mailer
	fromEmail string
	fromName  string
}

// NewPaymentConfirmationJob, mail bağımlılıkları enjekte edilmiş bir job
// oluşturur. Registry factory'si worker tarafında aynı bağımlılıklarla
// boş bir instance üretir, payload SetPayload ile doldurulur.
func NewPaymentConfirmationJob(mailer mail.Mailer, fromEmail, fromName string) *PaymentConfirmationJob {
	return &PaymentConfirmationJob{
		BaseJob: queue.BaseJob{
			Queue:       "emails",
			MaxAttempts: 3,
		},
		mailer:    mailer,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Handle, onay e-postasını gönderir.
func (j *PaymentConfirmationJob) Handle() error {
	numbers := make([]string, 0, len(j.Numbers))
	for _, n := range j.Numbers {
		numbers = append(numbers, fmt.Sprintf("%d", n))
	}

	body := fmt.Sprintf(
		"Merhaba %s,\n\nÖdemeniz onaylandı! %s çekilişindeki numaralarınız: %s\n\nBol şans!",
		j.BuyerName, j.RaffleName, strings.Join(numbers, ", "),
	)

	message := mail.NewMessage().
		From(j.fromEmail, j.fromName).
		To(j.BuyerEmail, j.BuyerName).
		Subject(fmt.Sprintf("Ödemeniz onaylandı - %s", j.RaffleName)).
		Body(body)

	if err := j.mailer.Send(message); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	log.WithFields(log.Fields{
		"buyer_email": j.BuyerEmail,
		"payment_id":  j.PaymentID,
		"numbers":     len(j.Numbers),
	}).Info("✅ Ödeme onay e-postası gönderildi")

	return nil
}

// Failed, tüm denemeler tükendiğinde çağrılır. E-posta gönderilemese de
// bilet satışı tamamlanmıştır, sadece loglanır.
func (j *PaymentConfirmationJob) Failed(err error) error {
	log.WithFields(log.Fields{
		"buyer_email": j.BuyerEmail,
		"payment_id":  j.PaymentID,
	}).WithError(err).Error("❌ Ödeme onay e-postası gönderilemedi")
	return nil
}

// GetPayload, job'ı JSON'a serialize eder.
func (j *PaymentConfirmationJob) GetPayload() ([]byte, error) {
	return json.Marshal(j)
}

// SetPayload, JSON'dan job'ı doldurur.
func (j *PaymentConfirmationJob) SetPayload(data []byte) error {
	return json.Unmarshal(data, j)
}
