// -----------------------------------------------------------------------------
// Raffle Model
// -----------------------------------------------------------------------------
// Çekilişleri (rifa) temsil eder. Bilet fiyatı ve toplam numara sayısı
// rezervasyon tarafında doğrulama için kullanılır.
// States: Draft, Active, Finished
// -----------------------------------------------------------------------------

package models

import "time"

// RaffleStatus, çekiliş durumunu temsil eder
type RaffleStatus string

const (
	RaffleStatusDraft    RaffleStatus = "draft"    // Henüz yayınlanmadı
	RaffleStatusActive   RaffleStatus = "active"   // Satışta
	RaffleStatusFinished RaffleStatus = "finished" // Tamamlandı
)

// Raffle, bir çekilişi temsil eder
type Raffle struct {
	BaseModel
	Name         string       `json:"name" db:"name"`
	Slug         string       `json:"slug" db:"slug"`
	Description  string       `json:"description,omitempty" db:"description"`
	TicketPrice  float64      `json:"ticket_price" db:"ticket_price"`
	TotalNumbers int          `json:"total_numbers" db:"total_numbers"`
	Status       RaffleStatus `json:"status" db:"status"`
	DrawDate     *time.Time   `json:"draw_date,omitempty" db:"draw_date"`

	// Promosyon eşiği: MinPromoQuantity ve üzeri bilet alımlarında
	// bilet başına PromoPrice uygulanır. 0 ise promosyon yoktur.
	MinPromoQuantity int     `json:"min_promo_quantity" db:"min_promo_quantity"`
	PromoPrice       float64 `json:"promo_price" db:"promo_price"`
}

// IsSaleActive, çekilişin bilet satışına açık olup olmadığını kontrol eder
func (r *Raffle) IsSaleActive() bool {
	return r.Status == RaffleStatusActive
}

// HasPromo, çekilişte adet promosyonu tanımlı olup olmadığını kontrol eder
func (r *Raffle) HasPromo() bool {
	return r.MinPromoQuantity > 0 && r.PromoPrice > 0
}

// ContainsNumber, numaranın çekilişin numara aralığında olup olmadığını
// kontrol eder. Numaralar 1'den TotalNumbers'a kadardır.
func (r *Raffle) ContainsNumber(number int) bool {
	return number >= 1 && number <= r.TotalNumbers
}
