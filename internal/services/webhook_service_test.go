// -----------------------------------------------------------------------------
// Webhook Service Tests
// -----------------------------------------------------------------------------
// Testler:
// - Ödeme bildiriminde biletlerin satılmışa çevrilmesi
// - Onay e-postası job'ının kuyruğa atılması
// - Ödenmemiş event'lerin yoksayılması
// - Mükerrer teslimatın ErrNoPendingTickets ile sonuçlanması
// - Bozuk externalId'nin reddedilmesi
// -----------------------------------------------------------------------------

package services

import (
	"errors"
	"testing"

	"github.com/biyonik/raffle-pix-api/internal/jobs"
	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
	"github.com/biyonik/raffle-pix-api/internal/pix"
)

func paidWebhookPayload(paymentID, externalID string) *pix.WebhookPayload {
	return &pix.WebhookPayload{
		Event: pix.EventBillingPaid,
		Data: pix.WebhookData{
			PixQRCode: pix.WebhookQRCode{
				ID:     paymentID,
				Status: pix.StatusPaid,
				Amount: 3000,
			},
			Metadata: pix.Metadata{ExternalID: externalID},
		},
	}
}

func newTestWebhookService(store *mockTicketStore, q *mockQueue) *WebhookService {
	return NewWebhookService(
		store, newMockRaffleStore(activeRaffle()),
		observer.NewEventPublisher(), q,
		&mockMailer{}, "noreply@rifa-go.local", "Rifa-Go",
	)
}

func TestProcessPaymentMarksTicketsSold(t *testing.T) {
	store := newMockTicketStore()
	store.markPaidNumbers = []int{5, 17, 99}

	ticket := &models.Ticket{
		RaffleID:   42,
		Number:     5,
		BuyerName:  "Maria Silva",
		BuyerEmail: "maria@example.com",
	}
	store.byPayment["pix_charge_123"] = []*models.Ticket{ticket}

	q := &mockQueue{}
	service := newTestWebhookService(store, q)

	result, err := service.ProcessPayment(paidWebhookPayload("pix_charge_123", "rifa_42_1717171717171"))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	if !result.Processed {
		t.Error("Processed = false, beklenen true")
	}
	if result.RaffleID != 42 {
		t.Errorf("RaffleID = %d, beklenen 42", result.RaffleID)
	}
	if len(result.Numbers) != 3 {
		t.Errorf("numara sayısı = %d, beklenen 3", len(result.Numbers))
	}
	if len(store.markPaidCalls) != 1 || store.markPaidCalls[0] != "pix_charge_123" {
		t.Errorf("MarkPaidByPaymentID çağrıları = %v", store.markPaidCalls)
	}
}

func TestProcessPaymentQueuesConfirmationEmail(t *testing.T) {
	store := newMockTicketStore()
	store.markPaidNumbers = []int{5}
	store.byPayment["pix_1"] = []*models.Ticket{{
		RaffleID:   42,
		Number:     5,
		BuyerName:  "Maria Silva",
		BuyerEmail: "maria@example.com",
	}}

	q := &mockQueue{}
	service := newTestWebhookService(store, q)

	if _, err := service.ProcessPayment(paidWebhookPayload("pix_1", "rifa_42_1")); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	if len(q.pushed) != 1 {
		t.Fatalf("kuyruğa atılan job sayısı = %d, beklenen 1", len(q.pushed))
	}

	job, ok := q.pushed[0].(*jobs.PaymentConfirmationJob)
	if !ok {
		t.Fatalf("beklenmeyen job tipi: %T", q.pushed[0])
	}
	if job.BuyerEmail != "maria@example.com" {
		t.Errorf("job.BuyerEmail = %s", job.BuyerEmail)
	}
	if job.RaffleName != "iPhone Çekilişi" {
		t.Errorf("job.RaffleName = %s", job.RaffleName)
	}
	if job.GetQueue() != "emails" {
		t.Errorf("job kuyruğu = %s, beklenen emails", job.GetQueue())
	}
}

func TestProcessPaymentIgnoresUnpaidEvents(t *testing.T) {
	store := newMockTicketStore()
	q := &mockQueue{}
	service := newTestWebhookService(store, q)

	payload := paidWebhookPayload("pix_2", "rifa_42_1")
	payload.Data.PixQRCode.Status = pix.StatusPending

	result, err := service.ProcessPayment(payload)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Processed {
		t.Error("ödenmemiş event işlenmemeli")
	}
	if len(store.markPaidCalls) != 0 {
		t.Error("ödenmemiş event'te MarkPaid çağrılmamalı")
	}
}

func TestProcessPaymentDuplicateDelivery(t *testing.T) {
	store := newMockTicketStore()
	store.markPaidErr = models.ErrNoPendingTickets
	service := newTestWebhookService(store, &mockQueue{})

	_, err := service.ProcessPayment(paidWebhookPayload("pix_3", "rifa_42_1"))
	if !errors.Is(err, models.ErrNoPendingTickets) {
		t.Fatalf("ErrNoPendingTickets beklenirken %v döndü", err)
	}
}

func TestProcessPaymentMalformedExternalID(t *testing.T) {
	store := newMockTicketStore()
	service := newTestWebhookService(store, &mockQueue{})

	cases := []string{"", "foo", "rifa_abc_1", "loteria_42_1", "rifa_42", "rifa_-1_1"}
	for _, externalID := range cases {
		_, err := service.ProcessPayment(paidWebhookPayload("pix_4", externalID))
		if !errors.Is(err, models.ErrMalformedExternalID) {
			t.Errorf("externalId %q: ErrMalformedExternalID beklenirken %v döndü", externalID, err)
		}
	}

	if len(store.markPaidCalls) != 0 {
		t.Error("bozuk externalId'de MarkPaid çağrılmamalı")
	}
}
