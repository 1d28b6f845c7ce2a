package services

import (
	"fmt"
	"strings"

	"github.com/biyonik/raffle-pix-api/internal/models"
)

// Ödeme durumu sorgusunun olası sonuçları.
const (
	PaymentStatePaid     = "paid"
	PaymentStatePending  = "pending"
	PaymentStateNotFound = "not_found"
)

// PaymentStatusResult, durum sorgusunun yanıtı.
type PaymentStatusResult struct {
	Status      string           `json:"status"`
	Message     string           `json:"message"`
	Tickets     []*models.Ticket `json:"tickets,omitempty"`
	SecondsLeft int              `json:"seconds_left,omitempty"`
}

type StatusService struct {
	ticketRepo TicketStore
}

func NewStatusService(ticketRepo TicketStore) *StatusService {
	return &StatusService{ticketRepo: ticketRepo}
}

// CheckPaymentStatus reports whether a charge has settled
//
// Sorgu (paymentID, buyerEmail, raffleID) üçlüsüyle yapılır; e-posta ve
// çekiliş eşleşmeyen satırlar sorgulayana gösterilmez. Üç durumdan biri döner:
//   - paid: en az bir bilet satılmış, ödeme tamamlanmış
//   - pending: rezervasyon hâlâ geçerli, ödeme bekleniyor
//   - not_found: kayıt yok ya da rezervasyonun süresi dolmuş
func (s *StatusService) CheckPaymentStatus(paymentID, buyerEmail string, raffleID int64) (*PaymentStatusResult, error) {
	if paymentID == "" || buyerEmail == "" || raffleID <= 0 {
		return nil, fmt.Errorf("ödeme referansı, e-posta ve çekiliş ID zorunludur")
	}

	found, err := s.ticketRepo.FindByPaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	tickets := make([]*models.Ticket, 0, len(found))
	for _, ticket := range found {
		if strings.EqualFold(ticket.BuyerEmail, buyerEmail) && ticket.RaffleID == raffleID {
			tickets = append(tickets, ticket)
		}
	}

	if len(tickets) == 0 {
		return &PaymentStatusResult{
			Status:  PaymentStateNotFound,
			Message: "Bu ödemeye ait bilet bulunamadı",
		}, nil
	}

	// Herhangi bir satır satıldıysa ödeme tamamlanmıştır
	for _, ticket := range tickets {
		if ticket.PaymentStatus == models.PaymentStatusPaid {
			return &PaymentStatusResult{
				Status:  PaymentStatePaid,
				Message: "Ödeme onaylandı",
				Tickets: tickets,
			}, nil
		}
	}

	// Satılmamış satırlar: rezervasyon hâlâ numarayı tutuyor mu?
	for _, ticket := range tickets {
		if ticket.HoldsNumber() {
			return &PaymentStatusResult{
				Status:      PaymentStatePending,
				Message:     "Ödeme bekleniyor",
				Tickets:     tickets,
				SecondsLeft: int(ticket.GetReservationTimeLeft().Seconds()),
			}, nil
		}
	}

	// Satırlar var ama süresi dolmuş, sweeper silmeden sorgu geldi
	return &PaymentStatusResult{
		Status:  PaymentStateNotFound,
		Message: "Rezervasyon süresi doldu, numaralar serbest bırakıldı",
	}, nil
}
