package factory

import (
	"encoding/base64"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/biyonik/raffle-pix-api/internal/models"
)

// TicketFactory handles the creation of reservation rows and QR code fallbacks
type TicketFactory struct {
	qrGenerator QRCodeGenerator
}

// QRCodeGenerator interface for generating QR code images from a BR Code
type QRCodeGenerator interface {
	Generate(data string) ([]byte, error)
	GenerateWithOptions(data string, size int, level qrcode.RecoveryLevel) ([]byte, error)
}

// DefaultQRCodeGenerator implements QRCodeGenerator
type DefaultQRCodeGenerator struct{}

func (g *DefaultQRCodeGenerator) Generate(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}

func (g *DefaultQRCodeGenerator) GenerateWithOptions(data string, size int, level qrcode.RecoveryLevel) ([]byte, error) {
	return qrcode.Encode(data, level, size)
}

// NewTicketFactory creates a new ticket factory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{
		qrGenerator: &DefaultQRCodeGenerator{},
	}
}

// NewTicketFactoryWithQRGenerator creates a factory with custom QR generator
func NewTicketFactoryWithQRGenerator(qrGenerator QRCodeGenerator) *TicketFactory {
	return &TicketFactory{
		qrGenerator: qrGenerator,
	}
}

// ReservationRequest holds parameters for building reservation rows
type ReservationRequest struct {
	RaffleID      int64
	Numbers       []int
	PaymentID     string
	ReservedUntil time.Time
	BuyerName     string
	BuyerEmail    string
	BuyerPhone    string
	BuyerTaxID    string
}

// CreateReservation builds one reserved ticket row per selected number.
// All rows share the same payment id so the webhook can settle them together.
func (f *TicketFactory) CreateReservation(req *ReservationRequest) []*models.Ticket {
	now := time.Now()
	tickets := make([]*models.Ticket, 0, len(req.Numbers))

	for _, number := range req.Numbers {
		reservedUntil := req.ReservedUntil
		tickets = append(tickets, &models.Ticket{
			BaseModel: models.BaseModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
			RaffleID:      req.RaffleID,
			Number:        number,
			Status:        models.TicketStatusReserved,
			PaymentStatus: models.PaymentStatusPending,
			PaymentID:     req.PaymentID,
			PaymentMethod: models.PaymentMethodPix,
			ReservedUntil: &reservedUntil,
			BuyerName:     req.BuyerName,
			BuyerEmail:    req.BuyerEmail,
			BuyerPhone:    req.BuyerPhone,
			BuyerTaxID:    req.BuyerTaxID,
		})
	}

	return tickets
}

// BuildQRCodeImage renders the copy-paste BR Code as a PNG data URL.
// Used as a fallback when the gateway response carries no image of its own.
func (f *TicketFactory) BuildQRCodeImage(brCode string) (string, error) {
	if brCode == "" {
		return "", fmt.Errorf("br code is empty")
	}

	png, err := f.qrGenerator.Generate(brCode)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
