package observer

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/pkg/cache"
)

// Event types for the observer pattern
type EventType string

const (
	EventTypeChargeCreated      EventType = "charge_created"
	EventTypePaymentCompleted   EventType = "payment_completed"
	EventTypeReservationExpired EventType = "reservation_expired"
	EventTypeNumbersUnavailable EventType = "numbers_unavailable"
)

// EventData holds data for an event
type EventData struct {
	Type      EventType
	Timestamp time.Time
	Data      interface{}
}

// Observer interface for subscribers
type Observer interface {
	Update(event *EventData) error
	GetName() string
}

// Subject (Publisher) interface
type Subject interface {
	Attach(observer Observer)
	Detach(observer Observer)
	Notify(event *EventData)
}

// EventPublisher manages observers and publishes events
type EventPublisher struct {
	observers []Observer
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

func (p *EventPublisher) Attach(observer Observer) {
	p.observers = append(p.observers, observer)
	log.WithField("observer", observer.GetName()).Debug("Observer eklendi")
}

func (p *EventPublisher) Detach(observer Observer) {
	for i, obs := range p.observers {
		if obs.GetName() == observer.GetName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			log.WithField("observer", observer.GetName()).Debug("Observer çıkarıldı")
			return
		}
	}
}

func (p *EventPublisher) Notify(event *EventData) {
	for _, observer := range p.observers {
		go func(obs Observer) {
			if err := obs.Update(event); err != nil {
				log.WithFields(log.Fields{
					"observer": obs.GetName(),
					"event":    event.Type,
				}).WithError(err).Warn("⚠️ Observer bildirimi başarısız")
			}
		}(observer)
	}
}

// LoggingObserver writes every domain event to the structured log
type LoggingObserver struct{}

func (o *LoggingObserver) Update(event *EventData) error {
	log.WithFields(log.Fields{
		"event": event.Type,
		"data":  fmt.Sprintf("%+v", event.Data),
	}).Info("Domain event")
	return nil
}

func (o *LoggingObserver) GetName() string {
	return "LoggingObserver"
}

// StatsObserver keeps per-event counters in the cache for the dashboard
type StatsObserver struct {
	Cache cache.Cache
}

func NewStatsObserver(c cache.Cache) *StatsObserver {
	return &StatsObserver{Cache: c}
}

func (o *StatsObserver) Update(event *EventData) error {
	key := fmt.Sprintf("stats:%s", event.Type)
	if _, err := o.Cache.Increment(key, 1); err != nil {
		return fmt.Errorf("failed to increment stat %s: %w", key, err)
	}
	return nil
}

func (o *StatsObserver) GetName() string {
	return "StatsObserver"
}
