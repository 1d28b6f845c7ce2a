package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/pkg/cache"
)

// raffleCacheTTL, çekiliş detaylarının cache'te kalma süresi. Fiyat ve durum
// değişiklikleri en geç bu süre sonunda görünür olur.
const raffleCacheTTL = 5 * time.Minute

// RaffleDirectory, listeleme için genişletilmiş çekiliş deposu sözleşmesi.
type RaffleDirectory interface {
	RaffleStore
	FindBySlug(slug string) (*models.Raffle, error)
	FindActive() ([]*models.Raffle, error)
}

// TicketCounter, çekiliş istatistikleri için bilet sayacı sözleşmesi.
type TicketCounter interface {
	CountByRaffle(raffleID int64) (sold int, reserved int, err error)
}

// RaffleStats, admin panelinin gördüğü doluluk özeti.
type RaffleStats struct {
	Raffle    *models.Raffle `json:"raffle"`
	Sold      int            `json:"sold"`
	Reserved  int            `json:"reserved"`
	Available int            `json:"available"`
}

type RaffleService struct {
	raffleRepo RaffleDirectory
	counter    TicketCounter
	cache      cache.Cache
}

func NewRaffleService(raffleRepo RaffleDirectory, counter TicketCounter, c cache.Cache) *RaffleService {
	return &RaffleService{
		raffleRepo: raffleRepo,
		counter:    counter,
		cache:      c,
	}
}

// ListActive returns raffles currently open for sale
func (s *RaffleService) ListActive() ([]*models.Raffle, error) {
	return s.raffleRepo.FindActive()
}

// GetBySlug returns a raffle by its public slug, cached
func (s *RaffleService) GetBySlug(slug string) (*models.Raffle, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug boş olamaz")
	}

	cached, err := s.cache.Remember(fmt.Sprintf("raffle:slug:%s", slug), raffleCacheTTL, func() (interface{}, error) {
		return s.raffleRepo.FindBySlug(slug)
	})
	if err != nil {
		return nil, err
	}

	// Redis driver'ı JSON üzerinden döndürür, değeri modele geri çevir
	raw, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached raffle: %w", err)
	}

	raffle := &models.Raffle{}
	if err := json.Unmarshal(raw, raffle); err != nil {
		return nil, fmt.Errorf("failed to decode cached raffle: %w", err)
	}

	return raffle, nil
}

// GetStats returns occupancy figures for the admin dashboard
func (s *RaffleService) GetStats(raffleID int64) (*RaffleStats, error) {
	raffle, err := s.raffleRepo.FindByID(raffleID)
	if err != nil {
		return nil, err
	}

	sold, reserved, err := s.counter.CountByRaffle(raffleID)
	if err != nil {
		return nil, err
	}

	return &RaffleStats{
		Raffle:    raffle,
		Sold:      sold,
		Reserved:  reserved,
		Available: raffle.TotalNumbers - sold - reserved,
	}, nil
}
