package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
)

type CleanupService struct {
	ticketRepo     TicketStore
	eventPublisher *observer.EventPublisher
}

func NewCleanupService(ticketRepo TicketStore, eventPublisher *observer.EventPublisher) *CleanupService {
	return &CleanupService{
		ticketRepo:     ticketRepo,
		eventPublisher: eventPublisher,
	}
}

// SweepExpired deletes expired reservations and returns the freed count
//
// Silinen satırların numaraları havuza döner ve yeniden satılabilir.
// Çekiliş bazında kaç numaranın serbest kaldığı loglanır.
func (s *CleanupService) SweepExpired() (int, error) {
	released, err := s.ticketRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, err
	}

	if len(released) == 0 {
		return 0, nil
	}

	perRaffle := make(map[int64][]int)
	for _, rn := range released {
		perRaffle[rn.RaffleID] = append(perRaffle[rn.RaffleID], rn.Number)
	}

	for raffleID, numbers := range perRaffle {
		log.WithFields(log.Fields{
			"raffle_id": raffleID,
			"count":     len(numbers),
			"numbers":   numbers,
		}).Info("Süresi dolan numaralar havuza döndü")
	}

	s.eventPublisher.Notify(&observer.EventData{
		Type:      observer.EventTypeReservationExpired,
		Timestamp: time.Now(),
		Data:      perRaffle,
	})

	return len(released), nil
}
