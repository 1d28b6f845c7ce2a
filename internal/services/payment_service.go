package services

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/patterns/factory"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
	"github.com/biyonik/raffle-pix-api/internal/patterns/strategy"
	"github.com/biyonik/raffle-pix-api/internal/pix"
	"github.com/biyonik/raffle-pix-api/pkg/token"
	v "github.com/biyonik/raffle-pix-api/pkg/validation"
	"github.com/biyonik/raffle-pix-api/pkg/validation/types"
)

// TicketStore, servis katmanının bilet deposu sözleşmesi.
type TicketStore interface {
	BulkReserve(tickets []*models.Ticket) error
	MarkPaidByPaymentID(paymentID string) ([]int, error)
	FindByPaymentID(paymentID string) ([]*models.Ticket, error)
	DeleteExpired(now time.Time) ([]models.ReleasedNumber, error)
}

// RaffleStore, servis katmanının çekiliş deposu sözleşmesi.
type RaffleStore interface {
	FindByID(id int64) (*models.Raffle, error)
}

// ValidationFailedError, alan bazlı doğrulama hatalarını controller'a taşır.
type ValidationFailedError struct {
	Errors map[string][]string
}

func (e *ValidationFailedError) Error() string {
	return "doğrulama hatası"
}

// PixData, alıcıya gösterilecek PIX ücret bilgileri.
type PixData struct {
	PaymentID    string    `json:"payment_id"`
	Amount       int64     `json:"amount"` // kuruş
	BRCode       string    `json:"br_code"`
	BRCodeBase64 string    `json:"br_code_base64"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// PixChargeResult, GeneratePix operasyonunun sonucu.
type PixChargeResult struct {
	PixData         *PixData  `json:"pix_data"`
	TicketsReserved int       `json:"tickets_reserved"`
	Numbers         []int     `json:"numbers"`
	ReservedUntil   time.Time `json:"reserved_until"`
}

type PaymentService struct {
	ticketRepo        TicketStore
	raffleRepo        RaffleStore
	gateway           pix.Gateway
	ticketFactory     *factory.TicketFactory
	eventPublisher    *observer.EventPublisher
	apiKey            string
	reservationWindow time.Duration
}

func NewPaymentService(
	ticketRepo TicketStore,
	raffleRepo RaffleStore,
	gateway pix.Gateway,
	eventPublisher *observer.EventPublisher,
	apiKey string,
	reservationWindow time.Duration,
) *PaymentService {
	return &PaymentService{
		ticketRepo:        ticketRepo,
		raffleRepo:        raffleRepo,
		gateway:           gateway,
		ticketFactory:     factory.NewTicketFactory(),
		eventPublisher:    eventPublisher,
		apiKey:            apiKey,
		reservationWindow: reservationWindow,
	}
}

// GeneratePix creates a PIX charge and reserves the selected numbers
func (s *PaymentService) GeneratePix(ctx context.Context, data map[string]any) (*PixChargeResult, error) {
	// 1. Kimlik bilgisi kontrolü: anahtar yoksa gateway'e hiç gitme
	if s.apiKey == "" {
		log.Error("❌ PIX API anahtarı yapılandırılmamış")
		return nil, models.ErrMissingPixCredential
	}

	// 2. Validate input using the validation schema
	schema := v.Make().Shape(map[string]v.Type{
		"raffle_id": types.Number().
			Required().
			Integer().
			Min(1).
			Label("Çekiliş ID"),
		"numbers": types.Array().
			Required().
			Min(1).
			Max(100).
			Unique().
			Elements(types.Number().Required().Integer().Min(1).Label("Numara")).
			Label("Numaralar"),
		"customer": types.Object().
			Required().
			Shape(map[string]v.Type{
				"name": types.String().
					Required().
					Trim().
					Min(2).
					Max(150).
					Label("Ad Soyad"),
				"email": types.String().
					Required().
					Trim().
					Email().
					Label("E-posta"),
				"cellphone": types.String().
					Required().
					Phone("BR").
					Label("Telefon"),
				"taxId": types.String().
					Required().
					TaxID().
					Label("Vergi Kimlik No"),
			}).
			Label("Alıcı"),
	})

	result := schema.Validate(data)
	if result.HasErrors() {
		return nil, &ValidationFailedError{Errors: result.Errors()}
	}

	valid := result.ValidData()
	raffleID := int64(valid["raffle_id"].(float64))
	numbers := toIntSlice(valid["numbers"].([]any))
	customer := valid["customer"].(map[string]any)

	// 3. Çekilişi yükle ve satış kurallarını uygula
	raffle, err := s.raffleRepo.FindByID(raffleID)
	if err != nil {
		return nil, err
	}

	if !raffle.IsSaleActive() {
		return nil, fmt.Errorf("bu çekilişte satış aktif değil")
	}

	for _, number := range numbers {
		if !raffle.ContainsNumber(number) {
			return nil, fmt.Errorf("numara %d bu çekilişin aralığı dışında (1-%d)", number, raffle.TotalNumbers)
		}
	}

	// 4. Tutarı sunucu tarafında hesapla, istemciden gelen tutara güvenme
	pricing := strategy.SelectStrategy(raffle.HasPromo())
	total := pricing.CalculateTotal(&strategy.PricingContext{
		UnitPrice:        raffle.TicketPrice,
		Quantity:         len(numbers),
		MinPromoQuantity: raffle.MinPromoQuantity,
		PromoPrice:       raffle.PromoPrice,
	})
	amountCents := int64(math.Round(total * 100))

	// 5. Webhook'un geri dönebilmesi için externalId üret
	externalID := token.BuildExternalID(raffle.ID)

	// 6. Gateway'de PIX ücreti oluştur
	qr, err := s.gateway.CreateQRCode(ctx, &pix.CreateQRCodeRequest{
		Amount:      amountCents,
		ExpiresIn:   int(s.reservationWindow.Seconds()),
		Description: fmt.Sprintf("%s - %d numara", raffle.Name, len(numbers)),
		Customer: pix.Customer{
			Name:      customer["name"].(string),
			Email:     customer["email"].(string),
			Cellphone: customer["cellphone"].(string),
			TaxID:     customer["taxId"].(string),
		},
		Metadata: pix.Metadata{
			ExternalID: externalID,
		},
	})
	if err != nil {
		return nil, err
	}

	// 7. Numaraları rezerve et
	reservedUntil := time.Now().Add(s.reservationWindow)
	tickets := s.ticketFactory.CreateReservation(&factory.ReservationRequest{
		RaffleID:      raffle.ID,
		Numbers:       numbers,
		PaymentID:     qr.ID,
		ReservedUntil: reservedUntil,
		BuyerName:     customer["name"].(string),
		BuyerEmail:    customer["email"].(string),
		BuyerPhone:    customer["cellphone"].(string),
		BuyerTaxID:    customer["taxId"].(string),
	})

	if err := s.ticketRepo.BulkReserve(tickets); err != nil {
		// Ücret gateway'de oluştu ama rezervasyon yazılamadı. Ödenirse
		// webhook ErrNoPendingTickets ile düşer, ücret mutabakat
		// listesinde görünür.
		log.WithFields(log.Fields{
			"payment_id":  qr.ID,
			"external_id": externalID,
			"raffle_id":   raffle.ID,
		}).WithError(err).Warn("⚠️ PIX ücreti oluştu ama rezervasyon yazılamadı")

		if err == models.ErrNumbersUnavailable {
			s.eventPublisher.Notify(&observer.EventData{
				Type:      observer.EventTypeNumbersUnavailable,
				Timestamp: time.Now(),
				Data:      map[string]any{"raffle_id": raffle.ID, "numbers": numbers},
			})
		}
		return nil, err
	}

	// 8. Observer'ları bilgilendir
	s.eventPublisher.Notify(&observer.EventData{
		Type:      observer.EventTypeChargeCreated,
		Timestamp: time.Now(),
		Data: map[string]any{
			"payment_id": qr.ID,
			"raffle_id":  raffle.ID,
			"amount":     amountCents,
		},
	})

	pixData := &PixData{
		PaymentID:    qr.ID,
		Amount:       qr.Amount,
		BRCode:       qr.BRCode,
		BRCodeBase64: qr.BRCodeBase64,
		ExpiresAt:    qr.ExpiresAt,
	}

	// Gateway görsel döndürmediyse BR Code'dan kendimiz üretiriz
	if pixData.BRCodeBase64 == "" && pixData.BRCode != "" {
		if image, imgErr := s.ticketFactory.BuildQRCodeImage(pixData.BRCode); imgErr == nil {
			pixData.BRCodeBase64 = image
		}
	}

	return &PixChargeResult{
		PixData:         pixData,
		TicketsReserved: len(tickets),
		Numbers:         numbers,
		ReservedUntil:   reservedUntil,
	}, nil
}

func toIntSlice(values []any) []int {
	numbers := make([]int, 0, len(values))
	for _, value := range values {
		switch n := value.(type) {
		case float64:
			numbers = append(numbers, int(n))
		case int:
			numbers = append(numbers, n)
		}
	}
	return numbers
}
