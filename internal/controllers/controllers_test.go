// -----------------------------------------------------------------------------
// Controller Tests
// -----------------------------------------------------------------------------
// HTTP sözleşmesinin testleri: durum sorgusunun POST+JSON gövdesi, webhook
// başarı yanıtının düz metin olması ve sweep hatasının 200 + success:false
// zarfıyla dönmesi.
// -----------------------------------------------------------------------------

package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
	"github.com/biyonik/raffle-pix-api/internal/services"
	"github.com/biyonik/raffle-pix-api/pkg/mail"
	"github.com/biyonik/raffle-pix-api/pkg/queue"
)

type fakeTicketStore struct {
	byPayment       map[string][]*models.Ticket
	markPaidNumbers []int
	markPaidErr     error
	deleteErr       error
	released        []models.ReleasedNumber
}

func (f *fakeTicketStore) BulkReserve(tickets []*models.Ticket) error { return nil }

func (f *fakeTicketStore) MarkPaidByPaymentID(paymentID string) ([]int, error) {
	if f.markPaidErr != nil {
		return nil, f.markPaidErr
	}
	return f.markPaidNumbers, nil
}

func (f *fakeTicketStore) FindByPaymentID(paymentID string) ([]*models.Ticket, error) {
	return f.byPayment[paymentID], nil
}

func (f *fakeTicketStore) DeleteExpired(now time.Time) ([]models.ReleasedNumber, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.released, nil
}

type fakeRaffleStore struct {
	raffles map[int64]*models.Raffle
}

func (f *fakeRaffleStore) FindByID(id int64) (*models.Raffle, error) {
	raffle, ok := f.raffles[id]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}
	return raffle, nil
}

type fakeQueue struct{}

func (f *fakeQueue) Push(job queue.Job, q string) error { return nil }
func (f *fakeQueue) Later(d time.Duration, job queue.Job, q string) error {
	return nil
}
func (f *fakeQueue) Pop(q string) (queue.Job, error) { return nil, nil }
func (f *fakeQueue) Delete(q string, job queue.Job) error { return nil }
func (f *fakeQueue) Release(q string, job queue.Job, d time.Duration) error {
	return nil
}
func (f *fakeQueue) Size(q string) (int64, error) { return 0, nil }

type fakeMailer struct{}

func (f *fakeMailer) Send(message *mail.Message) error { return nil }

func soldTicket(paymentID, email string, raffleID int64, number int) *models.Ticket {
	until := time.Now().Add(3 * time.Minute)
	return &models.Ticket{
		RaffleID:      raffleID,
		Number:        number,
		Status:        models.TicketStatusSold,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentID:     paymentID,
		BuyerName:     "Maria Silva",
		BuyerEmail:    email,
		ReservedUntil: &until,
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("yanıt gövdesi çözülemedi: %v", err)
	}
	return envelope
}

// ---------------------------------------------------------------------------
// PixController.CheckPaymentStatus
// ---------------------------------------------------------------------------

func statusController(store *fakeTicketStore) *PixController {
	return NewPixController(nil, services.NewStatusService(store))
}

func TestCheckPaymentStatusReadsJSONBody(t *testing.T) {
	store := &fakeTicketStore{
		byPayment: map[string][]*models.Ticket{
			"pix_charge_1": {soldTicket("pix_charge_1", "maria@example.com", 42, 17)},
		},
	}
	controller := statusController(store)

	body := bytes.NewBufferString(`{"pixId":"pix_charge_1","userEmail":"maria@example.com","raffleId":42}`)
	req := httptest.NewRequest(http.MethodPost, "/api/pix/status", body)

	rec := httptest.NewRecorder()
	controller.CheckPaymentStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, beklenen 200", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "paid" {
		t.Errorf("data.status = %v, beklenen paid", data["status"])
	}
}

func TestCheckPaymentStatusMissingFields(t *testing.T) {
	controller := statusController(&fakeTicketStore{})

	cases := []string{
		`{}`,
		`{"pixId":"pix_charge_1"}`,
		`{"pixId":"pix_charge_1","userEmail":"maria@example.com"}`,
		`{"userEmail":"maria@example.com","raffleId":42}`,
		`{"pixId":"pix_charge_1","userEmail":"maria@example.com","raffleId":0}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/pix/status", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		controller.CheckPaymentStatus(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("gövde %s: status = %d, beklenen 400", body, rec.Code)
		}
	}
}

// ---------------------------------------------------------------------------
// WebhookController.HandlePayment
// ---------------------------------------------------------------------------

func webhookController(store *fakeTicketStore) *WebhookController {
	raffles := &fakeRaffleStore{raffles: map[int64]*models.Raffle{
		42: {Name: "iPhone Çekilişi"},
	}}
	service := services.NewWebhookService(
		store, raffles, observer.NewEventPublisher(),
		&fakeQueue{}, &fakeMailer{}, "noreply@rifa.example.com", "Rifa-Go",
	)
	return NewWebhookController(service)
}

func TestWebhookSuccessIsPlainText(t *testing.T) {
	store := &fakeTicketStore{
		markPaidNumbers: []int{5, 17},
		byPayment: map[string][]*models.Ticket{
			"pix_charge_1": {soldTicket("pix_charge_1", "maria@example.com", 42, 5)},
		},
	}
	controller := webhookController(store)

	payload := `{"event":"billing.paid","data":{"pixQrCode":{"id":"pix_charge_1","status":"PAID"},"metadata":{"externalId":"rifa_42_1717171717171"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/pix", bytes.NewBufferString(payload))

	rec := httptest.NewRecorder()
	controller.HandlePayment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, beklenen 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %s, düz metin beklenir", got)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("gövde = %q, beklenen OK", rec.Body.String())
	}
}

func TestWebhookDuplicateDeliveryIs404(t *testing.T) {
	store := &fakeTicketStore{markPaidErr: models.ErrNoPendingTickets}
	controller := webhookController(store)

	payload := `{"event":"billing.paid","data":{"pixQrCode":{"id":"pix_charge_1","status":"PAID"},"metadata":{"externalId":"rifa_42_1717171717171"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/pix", bytes.NewBufferString(payload))

	rec := httptest.NewRecorder()
	controller.HandlePayment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, beklenen 404", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// CleanupController.CleanupExpired
// ---------------------------------------------------------------------------

func TestCleanupFailureIs200WithErrorEnvelope(t *testing.T) {
	store := &fakeTicketStore{deleteErr: errors.New("veritabanına erişilemedi")}
	service := services.NewCleanupService(store, observer.NewEventPublisher())
	controller := NewCleanupController(service)

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil)
	rec := httptest.NewRecorder()
	controller.CleanupExpired(rec, req)

	// Zamanlayıcıyı alarma geçirmemek için hata 200 ile raporlanır
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, beklenen 200", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != false {
		t.Error("success = true, beklenen false")
	}
	errMsg, _ := envelope["error"].(string)
	if errMsg == "" {
		t.Error("error alanı boş, sweep hatası taşınmalı")
	}
	if !strings.Contains(errMsg, "veritabanına erişilemedi") {
		t.Errorf("error = %q, sweep hatasının mesajını içermeli", errMsg)
	}
}

func TestCleanupSuccessReportsCount(t *testing.T) {
	store := &fakeTicketStore{released: []models.ReleasedNumber{
		{RaffleID: 42, Number: 5},
		{RaffleID: 42, Number: 17},
	}}
	service := services.NewCleanupService(store, observer.NewEventPublisher())
	controller := NewCleanupController(service)

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil)
	rec := httptest.NewRecorder()
	controller.CleanupExpired(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, beklenen 200", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if count, _ := data["expired_tickets_count"].(float64); int(count) != 2 {
		t.Errorf("expired_tickets_count = %v, beklenen 2", data["expired_tickets_count"])
	}
}
