// -----------------------------------------------------------------------------
// Status Service Tests
// -----------------------------------------------------------------------------
// Testler:
// - paid > pending > not_found öncelik sırası
// - E-posta ve çekiliş eşleşmeyen satırların gizlenmesi
// - Süresi dolmuş rezervasyonun not_found sayılması
// -----------------------------------------------------------------------------

package services

import (
	"testing"
	"time"

	"github.com/biyonik/raffle-pix-api/internal/models"
)

func statusTicket(status models.TicketStatus, payment models.PaymentStatus, until time.Time) *models.Ticket {
	return &models.Ticket{
		RaffleID:      42,
		Number:        5,
		Status:        status,
		PaymentStatus: payment,
		ReservedUntil: &until,
		BuyerEmail:    "maria@example.com",
	}
}

func TestCheckPaymentStatusPaid(t *testing.T) {
	store := newMockTicketStore()
	store.byPayment["pix_1"] = []*models.Ticket{
		statusTicket(models.TicketStatusSold, models.PaymentStatusPaid, time.Now().Add(-time.Minute)),
	}

	service := NewStatusService(store)

	result, err := service.CheckPaymentStatus("pix_1", "maria@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStatePaid {
		t.Errorf("Status = %s, beklenen paid", result.Status)
	}
}

func TestCheckPaymentStatusPending(t *testing.T) {
	store := newMockTicketStore()
	store.byPayment["pix_2"] = []*models.Ticket{
		statusTicket(models.TicketStatusReserved, models.PaymentStatusPending, time.Now().Add(3*time.Minute)),
	}

	service := NewStatusService(store)

	result, err := service.CheckPaymentStatus("pix_2", "maria@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStatePending {
		t.Errorf("Status = %s, beklenen pending", result.Status)
	}
	if result.SecondsLeft <= 0 || result.SecondsLeft > 180 {
		t.Errorf("SecondsLeft = %d, 0-180 aralığında olmalı", result.SecondsLeft)
	}
}

func TestCheckPaymentStatusPaidWinsOverPending(t *testing.T) {
	store := newMockTicketStore()
	store.byPayment["pix_3"] = []*models.Ticket{
		statusTicket(models.TicketStatusReserved, models.PaymentStatusPending, time.Now().Add(3*time.Minute)),
		statusTicket(models.TicketStatusSold, models.PaymentStatusPaid, time.Now().Add(-time.Minute)),
	}

	service := NewStatusService(store)

	result, err := service.CheckPaymentStatus("pix_3", "maria@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStatePaid {
		t.Errorf("Status = %s, paid pending'den öncelikli olmalı", result.Status)
	}
}

func TestCheckPaymentStatusNotFound(t *testing.T) {
	service := NewStatusService(newMockTicketStore())

	result, err := service.CheckPaymentStatus("pix_yok", "maria@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStateNotFound {
		t.Errorf("Status = %s, beklenen not_found", result.Status)
	}
}

func TestCheckPaymentStatusExpiredReservation(t *testing.T) {
	store := newMockTicketStore()
	store.byPayment["pix_4"] = []*models.Ticket{
		statusTicket(models.TicketStatusReserved, models.PaymentStatusPending, time.Now().Add(-time.Minute)),
	}

	service := NewStatusService(store)

	result, err := service.CheckPaymentStatus("pix_4", "maria@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStateNotFound {
		t.Errorf("Status = %s, süresi dolmuş rezervasyon not_found olmalı", result.Status)
	}
}

func TestCheckPaymentStatusHidesForeignTickets(t *testing.T) {
	store := newMockTicketStore()
	store.byPayment["pix_5"] = []*models.Ticket{
		statusTicket(models.TicketStatusSold, models.PaymentStatusPaid, time.Now()),
	}

	service := NewStatusService(store)

	// Başka bir e-posta ile sorgu
	result, err := service.CheckPaymentStatus("pix_5", "baskasi@example.com", 42)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStateNotFound {
		t.Errorf("Status = %s, eşleşmeyen e-postada not_found olmalı", result.Status)
	}

	// Başka bir çekiliş ile sorgu
	result, err = service.CheckPaymentStatus("pix_5", "maria@example.com", 7)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if result.Status != PaymentStateNotFound {
		t.Errorf("Status = %s, eşleşmeyen çekilişte not_found olmalı", result.Status)
	}
}

func TestCheckPaymentStatusRequiresAllKeys(t *testing.T) {
	service := NewStatusService(newMockTicketStore())

	if _, err := service.CheckPaymentStatus("", "maria@example.com", 42); err == nil {
		t.Error("boş paymentID'de hata beklenirdi")
	}
	if _, err := service.CheckPaymentStatus("pix_6", "", 42); err == nil {
		t.Error("boş e-postada hata beklenirdi")
	}
	if _, err := service.CheckPaymentStatus("pix_6", "maria@example.com", 0); err == nil {
		t.Error("geçersiz çekiliş ID'de hata beklenirdi")
	}
}
