package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/biyonik/raffle-pix-api/internal/http/request"
	"github.com/biyonik/raffle-pix-api/internal/http/response"
	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/services"
)

// RaffleController handles raffle listing and admin stats (ultra-thin!)
type RaffleController struct {
	raffleService *services.RaffleService
}

func NewRaffleController(raffleService *services.RaffleService) *RaffleController {
	return &RaffleController{
		raffleService: raffleService,
	}
}

// ListActive handles GET /api/raffles
func (c *RaffleController) ListActive(w http.ResponseWriter, r *http.Request) {
	raffles, err := c.raffleService.ListActive()
	if err != nil {
		response.ServerError(w, "Çekilişler listelenemedi")
		return
	}

	response.Success(w, http.StatusOK, raffles, nil)
}

// GetBySlug handles GET /api/raffles/{slug}
func (c *RaffleController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)

	raffle, err := c.raffleService.GetBySlug(req.RouteParam("slug"))
	if err != nil {
		if errors.Is(err, models.ErrRaffleNotFound) {
			response.NotFound(w, models.ErrRaffleNotFound.Message)
			return
		}
		response.ServerError(w, "Çekiliş getirilemedi")
		return
	}

	response.Success(w, http.StatusOK, raffle, nil)
}

// GetStats handles GET /api/admin/raffles/{id}/stats (JWT korumalı)
func (c *RaffleController) GetStats(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)

	raffleID, err := strconv.ParseInt(req.RouteParam("id"), 10, 64)
	if err != nil || raffleID <= 0 {
		response.BadRequest(w, "Geçersiz çekiliş ID")
		return
	}

	stats, err := c.raffleService.GetStats(raffleID)
	if err != nil {
		if errors.Is(err, models.ErrRaffleNotFound) {
			response.NotFound(w, models.ErrRaffleNotFound.Message)
			return
		}
		response.ServerError(w, "İstatistikler getirilemedi")
		return
	}

	response.Success(w, http.StatusOK, stats, nil)
}
