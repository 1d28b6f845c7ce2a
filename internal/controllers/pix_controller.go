package controllers

import (
	"errors"
	"net/http"

	"github.com/biyonik/raffle-pix-api/internal/http/request"
	"github.com/biyonik/raffle-pix-api/internal/http/response"
	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/pix"
	"github.com/biyonik/raffle-pix-api/internal/services"
)

// PixController handles PIX charge creation and status queries (ultra-thin!)
type PixController struct {
	paymentService *services.PaymentService
	statusService  *services.StatusService
}

func NewPixController(paymentService *services.PaymentService, statusService *services.StatusService) *PixController {
	return &PixController{
		paymentService: paymentService,
		statusService:  statusService,
	}
}

// GeneratePix handles POST /api/pix/generate
func (c *PixController) GeneratePix(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)

	// 1. Parse request
	data, err := req.ParseJSONMap()
	if err != nil {
		response.InvalidJSON(w)
		return
	}

	// 2. Call service
	result, err := c.paymentService.GeneratePix(r.Context(), data)
	if err != nil {
		c.writeGenerateError(w, err)
		return
	}

	// 3. Return response
	response.Success(w, http.StatusCreated, result, nil)
}

// CheckPaymentStatus handles POST /api/pix/status
//
// Body: { "pixId": "...", "userEmail": "...", "raffleId": 42 }
func (c *PixController) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)

	data, err := req.ParseJSONMap()
	if err != nil {
		response.InvalidJSON(w)
		return
	}

	paymentID, _ := data["pixId"].(string)
	email, _ := data["userEmail"].(string)
	raffleID := toInt64(data["raffleId"])

	if paymentID == "" || email == "" || raffleID <= 0 {
		response.BadRequest(w, "Ödeme referansı, e-posta ve çekiliş ID zorunludur")
		return
	}

	result, err := c.statusService.CheckPaymentStatus(paymentID, email, raffleID)
	if err != nil {
		response.ServerError(w, "Ödeme durumu sorgulanamadı")
		return
	}

	response.Success(w, http.StatusOK, result, nil)
}

// toInt64, JSON'dan gelen sayısal değeri normalize eder (decode float64 üretir)
func toInt64(value any) int64 {
	switch n := value.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

// writeGenerateError maps service errors onto the HTTP contract
func (c *PixController) writeGenerateError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationFailedError
	if errors.As(err, &validationErr) {
		response.ValidationError(w, validationErr.Errors)
		return
	}

	// Gateway hataları sağlayıcının mesajıyla, değiştirilmeden iletilir
	var gatewayErr *pix.GatewayError
	if errors.As(err, &gatewayErr) {
		response.Error(w, http.StatusInternalServerError, gatewayErr.Message)
		return
	}

	switch {
	case errors.Is(err, models.ErrNumbersUnavailable):
		response.Conflict(w, models.ErrNumbersUnavailable.Message)
	case errors.Is(err, models.ErrRaffleNotFound):
		response.NotFound(w, models.ErrRaffleNotFound.Message)
	case errors.Is(err, models.ErrMissingPixCredential):
		response.ServerError(w, models.ErrMissingPixCredential.Message)
	default:
		response.BadRequest(w, err.Error())
	}
}
