// -----------------------------------------------------------------------------
// Cleanup Service Tests
// -----------------------------------------------------------------------------

package services

import (
	"errors"
	"testing"

	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/patterns/observer"
)

func TestSweepExpiredReturnsFreedCount(t *testing.T) {
	store := newMockTicketStore()
	store.released = []models.ReleasedNumber{
		{RaffleID: 42, Number: 5},
		{RaffleID: 42, Number: 17},
		{RaffleID: 7, Number: 3},
	}

	service := NewCleanupService(store, observer.NewEventPublisher())

	count, err := service.SweepExpired()
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, beklenen 3", count)
	}
}

func TestSweepExpiredEmpty(t *testing.T) {
	service := NewCleanupService(newMockTicketStore(), observer.NewEventPublisher())

	count, err := service.SweepExpired()
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, beklenen 0", count)
	}
}

func TestSweepExpiredPropagatesError(t *testing.T) {
	store := newMockTicketStore()
	store.deleteErr = errors.New("connection refused")

	service := NewCleanupService(store, observer.NewEventPublisher())

	if _, err := service.SweepExpired(); err == nil {
		t.Fatal("store hatası yukarı taşınmalı")
	}
}
