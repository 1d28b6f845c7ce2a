// -----------------------------------------------------------------------------
// Ticket Model
// -----------------------------------------------------------------------------
// Çekiliş biletlerini (numaralandırılmış rifa biletleri) temsil eder.
// States: Reserved, Sold — müsait numaraların satırı yoktur; rezervasyon
// süresi dolan satırlar sweeper tarafından silinir ve numara havuza döner.
// -----------------------------------------------------------------------------

package models

import (
	"time"
)

// TicketStatus, bilet durumunu temsil eder (State Pattern)
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "reserved" // Rezerve edilmiş (5 dk)
	TicketStatusSold     TicketStatus = "sold"     // Satılmış
)

// PaymentStatus, biletin ödeme durumunu temsil eder
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"  // Ödeme bekleniyor
	PaymentStatusPaid     PaymentStatus = "paid"     // Ödendi
	PaymentStatusFailed   PaymentStatus = "failed"   // Başarısız
	PaymentStatusRefunded PaymentStatus = "refunded" // İade edildi
)

// PaymentMethodPix, PIX ile yapılan ödemeleri işaretler.
const PaymentMethodPix = "pix"

// Ticket, bir çekilişteki tek bir numaralı bileti temsil eder.
//
// (raffle_id, number) çifti canlı satırlar arasında tekildir; aynı numara
// için ikinci bir rezervasyon unique index ihlali ile reddedilir.
type Ticket struct {
	BaseModel
	RaffleID      int64         `json:"raffle_id" db:"raffle_id"`
	Number        int           `json:"number" db:"number"`
	Status        TicketStatus  `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentID     string        `json:"payment_id,omitempty" db:"payment_id"`
	PaymentMethod string        `json:"payment_method,omitempty" db:"payment_method"`
	ReservedUntil *time.Time    `json:"reserved_until,omitempty" db:"reserved_until"`
	PurchaseDate  *time.Time    `json:"purchase_date,omitempty" db:"purchase_date"`

	// Alıcı bilgileri rezervasyon anında kopyalanır ve sonradan değişmez.
	BuyerName  string `json:"buyer_name" db:"buyer_name"`
	BuyerEmail string `json:"buyer_email" db:"buyer_email"`
	BuyerPhone string `json:"buyer_phone,omitempty" db:"buyer_phone"`
	BuyerTaxID string `json:"buyer_tax_id,omitempty" db:"buyer_tax_id"`
}

// ReleasedNumber, temizlik sırasında havuza geri dönen bir numarayı taşır.
type ReleasedNumber struct {
	RaffleID int64 `json:"raffle_id"`
	Number   int   `json:"number"`
}

// State Pattern Methods

// IsExpired, rezervasyonun süresinin dolup dolmadığını kontrol eder
func (t *Ticket) IsExpired() bool {
	if t.Status != TicketStatusReserved {
		return false
	}
	if t.ReservedUntil == nil {
		return false
	}
	return time.Now().After(*t.ReservedUntil)
}

// HoldsNumber, satırın numarayı hâlâ tutup tutmadığını kontrol eder.
// Süresi dolmuş bir rezervasyon numarayı tutuyor sayılmaz.
func (t *Ticket) HoldsNumber() bool {
	if t.Status == TicketStatusSold {
		return true
	}
	return t.Status == TicketStatusReserved && !t.IsExpired()
}

// CanMarkPaid, biletin ödendi olarak işaretlenip işaretlenemeyeceğini
// kontrol eder
func (t *Ticket) CanMarkPaid() bool {
	return t.Status == TicketStatusReserved && t.PaymentStatus == PaymentStatusPending
}

// MarkAsPaid, bileti satılmış/ödendi olarak işaretler (State transition)
func (t *Ticket) MarkAsPaid(paymentID string) error {
	if !t.CanMarkPaid() {
		return ErrInvalidStateTransition
	}
	t.Status = TicketStatusSold
	t.PaymentStatus = PaymentStatusPaid
	t.PaymentMethod = PaymentMethodPix
	t.PaymentID = paymentID
	now := time.Now()
	t.PurchaseDate = &now
	t.ReservedUntil = nil
	t.Touch()
	return nil
}

// GetReservationTimeLeft, rezervasyonun kalan süresini döndürür
func (t *Ticket) GetReservationTimeLeft() time.Duration {
	if t.Status != TicketStatusReserved || t.ReservedUntil == nil {
		return 0
	}
	remaining := time.Until(*t.ReservedUntil)
	if remaining < 0 {
		return 0
	}
	return remaining
}
