package controllers

import (
	"net/http"

	"github.com/biyonik/raffle-pix-api/internal/http/response"
	"github.com/biyonik/raffle-pix-api/internal/services"
)

// CleanupController exposes the protected reservation sweep endpoint (ultra-thin!)
type CleanupController struct {
	cleanupService *services.CleanupService
}

func NewCleanupController(cleanupService *services.CleanupService) *CleanupController {
	return &CleanupController{
		cleanupService: cleanupService,
	}
}

// CleanupExpired handles POST /api/cleanup/expired-tickets
//
// Cron secret doğrulaması middleware'de yapılır, buraya gelen istek
// yetkilendirilmiş sayılır.
func (c *CleanupController) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	count, err := c.cleanupService.SweepExpired()
	if err != nil {
		// Bir sonraki çalıştırma kendini toparlar, cron'u alarma geçirme
		response.Error(w, http.StatusOK, err.Error())
		return
	}

	response.Success(w, http.StatusOK, map[string]any{
		"message":               "Temizlik tamamlandı",
		"expired_tickets_count": count,
	}, nil)
}
