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

// WebhookController handles payment provider callbacks (ultra-thin!)
type WebhookController struct {
	webhookService *services.WebhookService
}

func NewWebhookController(webhookService *services.WebhookService) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
	}
}

// HandlePayment handles POST /api/webhook/pix
//
// Sağlayıcı 2xx dışındaki yanıtlarda bildirimi tekrar dener. Mükerrer
// teslimatta bekleyen satır kalmadığı için 404 döner ve sağlayıcının
// retry penceresi kendiliğinden kapanır.
func (c *WebhookController) HandlePayment(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)

	var payload pix.WebhookPayload
	if err := req.ParseJSON(&payload); err != nil {
		response.InvalidJSON(w)
		return
	}

	if _, err := c.webhookService.ProcessPayment(&payload); err != nil {
		switch {
		case errors.Is(err, models.ErrMalformedExternalID):
			response.BadRequest(w, models.ErrMalformedExternalID.Message)
		case errors.Is(err, models.ErrNoPendingTickets):
			// Mükerrer teslimat ya da süresi dolup silinmiş rezervasyon
			response.NotFound(w, models.ErrNoPendingTickets.Message)
		default:
			response.ServerError(w, "Webhook işlenemedi")
		}
		return
	}

	// Sağlayıcı yalnızca 200'ü başarı sayar, gövdeyi okumaz
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
