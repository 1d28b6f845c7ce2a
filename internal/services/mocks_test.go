// -----------------------------------------------------------------------------
// Service Test Mocks
// -----------------------------------------------------------------------------
// Servis testlerinin paylaştığı in-memory store, gateway, queue ve mailer
// mock'ları.
// -----------------------------------------------------------------------------

package services

import (
	"context"
	"sync"
	"time"

	"github.com/biyonik/raffle-pix-api/internal/models"
	"github.com/biyonik/raffle-pix-api/internal/pix"
	"github.com/biyonik/raffle-pix-api/pkg/mail"
	"github.com/biyonik/raffle-pix-api/pkg/queue"
)

// mockTicketStore, TicketStore'un in-memory implementasyonu.
type mockTicketStore struct {
	mu sync.Mutex

	reserved       []*models.Ticket
	bulkReserveErr error

	markPaidNumbers []int
	markPaidErr     error
	markPaidCalls   []string

	byPayment map[string][]*models.Ticket
	findErr   error

	released  []models.ReleasedNumber
	deleteErr error
}

func newMockTicketStore() *mockTicketStore {
	return &mockTicketStore{
		byPayment: make(map[string][]*models.Ticket),
	}
}

func (m *mockTicketStore) BulkReserve(tickets []*models.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bulkReserveErr != nil {
		return m.bulkReserveErr
	}
	m.reserved = append(m.reserved, tickets...)
	return nil
}

func (m *mockTicketStore) MarkPaidByPaymentID(paymentID string) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.markPaidCalls = append(m.markPaidCalls, paymentID)
	if m.markPaidErr != nil {
		return nil, m.markPaidErr
	}
	return m.markPaidNumbers, nil
}

func (m *mockTicketStore) FindByPaymentID(paymentID string) ([]*models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byPayment[paymentID], nil
}

func (m *mockTicketStore) DeleteExpired(now time.Time) ([]models.ReleasedNumber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return m.released, nil
}

// mockRaffleStore, RaffleStore'un in-memory implementasyonu.
type mockRaffleStore struct {
	raffles map[int64]*models.Raffle
}

func newMockRaffleStore(raffles ...*models.Raffle) *mockRaffleStore {
	store := &mockRaffleStore{raffles: make(map[int64]*models.Raffle)}
	for _, raffle := range raffles {
		store.raffles[raffle.ID] = raffle
	}
	return store
}

func (m *mockRaffleStore) FindByID(id int64) (*models.Raffle, error) {
	raffle, ok := m.raffles[id]
	if !ok {
		return nil, models.ErrRaffleNotFound
	}
	return raffle, nil
}

// mockGateway, pix.Gateway'in test implementasyonu.
type mockGateway struct {
	mu sync.Mutex

	lastRequest *pix.CreateQRCodeRequest
	calls       int
	qr          *pix.QRCode
	err         error
}

func (m *mockGateway) CreateQRCode(ctx context.Context, req *pix.CreateQRCodeRequest) (*pix.QRCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.qr, nil
}

// mockQueue, queue.Queue'nun push'ları kaydeden implementasyonu.
type mockQueue struct {
	mu      sync.Mutex
	pushed  []queue.Job
	pushErr error
}

func (m *mockQueue) Push(job queue.Job, queueName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pushErr != nil {
		return m.pushErr
	}
	job.SetQueue(queueName)
	m.pushed = append(m.pushed, job)
	return nil
}

func (m *mockQueue) Later(delay time.Duration, job queue.Job, queueName string) error {
	return m.Push(job, queueName)
}

func (m *mockQueue) Pop(queueName string) (queue.Job, error) {
	return nil, nil
}

func (m *mockQueue) Delete(queueName string, job queue.Job) error {
	return nil
}

func (m *mockQueue) Release(queueName string, job queue.Job, delay time.Duration) error {
	return nil
}

func (m *mockQueue) Size(queueName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.pushed)), nil
}

// mockMailer, gönderilen mesajları kaydeden mailer.
type mockMailer struct {
	mu       sync.Mutex
	messages []*mail.Message
}

func (m *mockMailer) Send(message *mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	return nil
}
