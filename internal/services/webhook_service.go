package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/internal/jobs"
	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
	"github.com/biyonik/raffle-pix-api/internal/pix"
	"github.com/biyonik/raffle-pix-api/pkg/mail"
	"github.com/biyonik/raffle-pix-api/pkg/queue"
	"github.com/biyonik/raffle-pix-api/pkg/token"
)

// WebhookResult, webhook işleme sonucu.
type WebhookResult struct {
	Processed bool  `json:"processed"`
	RaffleID  int64 `json:"raffle_id,omitempty"`
	Numbers   []int `json:"numbers,omitempty"`
}

type WebhookService struct {
	ticketRepo     TicketStore
	raffleRepo     RaffleStore
	eventPublisher *observer.EventPublisher
	jobQueue       queue.Queue
	mailer         mail.Mailer
	mailFromEmail  string
	mailFromName   string
}

func NewWebhookService(
	ticketRepo TicketStore,
	raffleRepo RaffleStore,
	eventPublisher *observer.EventPublisher,
	jobQueue queue.Queue,
	mailer mail.Mailer,
	mailFromEmail string,
	mailFromName string,
) *WebhookService {
	return &WebhookService{
		ticketRepo:     ticketRepo,
		raffleRepo:     raffleRepo,
		eventPublisher: eventPublisher,
		jobQueue:       jobQueue,
		mailer:         mailer,
		mailFromEmail:  mailFromEmail,
		mailFromName:   mailFromName,
	}
}

// ProcessPayment settles the tickets tied to a paid charge notification
func (s *WebhookService) ProcessPayment(payload *pix.WebhookPayload) (*WebhookResult, error) {
	// 1. Sadece "ödendi" bildirimleri işlenir, gerisi sessizce onaylanır
	if !payload.IsPaid() {
		log.WithFields(log.Fields{
			"event":  payload.Event,
			"status": payload.Data.PixQRCode.Status,
		}).Debug("Webhook yoksayıldı")
		return &WebhookResult{Processed: false}, nil
	}

	// 2. externalId'den çekilişi çöz
	raffleID, err := token.ParseExternalID(payload.Data.Metadata.ExternalID)
	if err != nil {
		log.WithField("external_id", payload.Data.Metadata.ExternalID).Warn("⚠️ Tanınmayan externalId ile webhook geldi")
		return nil, models.ErrMalformedExternalID
	}

	paymentID := payload.Data.PixQRCode.ID

	// 3. Bekleyen biletleri satılmışa çevir. Mükerrer teslimatta etkilenen
	// satır kalmaz ve ErrNoPendingTickets döner.
	numbers, err := s.ticketRepo.MarkPaidByPaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"payment_id": paymentID,
		"raffle_id":  raffleID,
		"numbers":    len(numbers),
	}).Info("✅ Ödeme onaylandı, biletler satıldı")

	// 4. Onay e-postasını kuyruğa at
	tickets, err := s.ticketRepo.FindByPaymentID(paymentID)
	if err == nil && len(tickets) > 0 {
		raffleName := ""
		if raffle, raffleErr := s.raffleRepo.FindByID(raffleID); raffleErr == nil {
			raffleName = raffle.Name
		}

		job := jobs.NewPaymentConfirmationJob(s.mailer, s.mailFromEmail, s.mailFromName)
		job.BuyerName = tickets[0].BuyerName
		job.BuyerEmail = tickets[0].BuyerEmail
		job.RaffleName = raffleName
		job.Numbers = numbers
		job.PaymentID = paymentID

		if pushErr := s.jobQueue.Push(job, "emails"); pushErr != nil {
			// E-posta kuyruğa atılamasa da satış tamamlandı sayılır
			log.WithField("payment_id", paymentID).WithError(pushErr).Warn("⚠️ Onay e-postası kuyruğa atılamadı")
		}
	}

	// 5. Observer'ları bilgilendir
	s.eventPublisher.Notify(&observer.EventData{
		Type:      observer.EventTypePaymentCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"payment_id": paymentID,
			"raffle_id":  raffleID,
			"numbers":    numbers,
		},
	})

	return &WebhookResult{
		Processed: true,
		RaffleID:  raffleID,
		Numbers:   numbers,
	}, nil
}
