package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/biyonik/raffle-pix-api/internal/models"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// BulkReserve, verilen biletlerin tamamını tek bir transaction içinde rezerve eder.
// Önce istenen numaralar üzerindeki süresi dolmuş rezervasyonlar silinir, ardından
// yeni satırlar topluca eklenir. (raffle_id, number) unique index'i ihlal edilirse
// numaralardan en az biri bu arada başka bir alıcı tarafından tutulmuş demektir ve
// models.ErrNumbersUnavailable döner.
func (r *TicketRepository) BulkReserve(tickets []*models.Ticket) error {
	if len(tickets) == 0 {
		return fmt.Errorf("no tickets to reserve")
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	raffleID := tickets[0].RaffleID
	numbers := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		numbers = append(numbers, int64(t.Number))
	}

	purgeQuery := `
		DELETE FROM tickets
		WHERE raffle_id = $1
		  AND number = ANY($2)
		  AND status = 'reserved'
		  AND reserved_until < NOW()
	`

	if _, err := tx.Exec(purgeQuery, raffleID, pq.Array(numbers)); err != nil {
		return fmt.Errorf("failed to purge expired reservations: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO tickets (raffle_id, number, status, payment_status, payment_id,
			payment_method, reserved_until, buyer_name, buyer_email, buyer_phone,
			buyer_tax_id, created_at, updated_at)
		VALUES `)

	args := make([]interface{}, 0, len(tickets)*13)
	for i, t := range tickets {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 13
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13))
		args = append(args,
			t.RaffleID, t.Number, t.Status, t.PaymentStatus, t.PaymentID,
			t.PaymentMethod, t.ReservedUntil, t.BuyerName, t.BuyerEmail,
			t.BuyerPhone, t.BuyerTaxID, t.CreatedAt, t.UpdatedAt,
		)
	}

	if _, err := tx.Exec(sb.String(), args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.ErrNumbersUnavailable
		}
		return fmt.Errorf("failed to insert reservations: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil
}

// MarkPaidByPaymentID, ödemesi beklenen biletleri satılmış olarak işaretler ve
// etkilenen numaraları döndürür. Aynı payment_id için ikinci çağrı etkilenen
// satır bulamaz ve models.ErrNoPendingTickets döner.
func (r *TicketRepository) MarkPaidByPaymentID(paymentID string) ([]int, error) {
	query := `
		UPDATE tickets
		SET status = 'sold', payment_status = 'paid', purchase_date = NOW(), updated_at = NOW()
		WHERE payment_id = $1 AND payment_status = 'pending'
		RETURNING number
	`

	rows, err := r.db.Query(query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark tickets paid: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var number int
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan ticket number: %w", err)
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read updated tickets: %w", err)
	}

	if len(numbers) == 0 {
		return nil, models.ErrNoPendingTickets
	}

	return numbers, nil
}

func (r *TicketRepository) FindByPaymentID(paymentID string) ([]*models.Ticket, error) {
	query := `
		SELECT id, raffle_id, number, status, payment_status,
			COALESCE(payment_id, ''), COALESCE(payment_method, ''),
			reserved_until, purchase_date,
			buyer_name, buyer_email, COALESCE(buyer_phone, ''), COALESCE(buyer_tax_id, ''),
			created_at, updated_at
		FROM tickets
		WHERE payment_id = $1
		ORDER BY number ASC
	`

	rows, err := r.db.Query(query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tickets by payment: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

// DeleteExpired, süresi dolmuş tüm rezervasyonları siler ve serbest kalan
// numaraları çekiliş bazında döndürür.
func (r *TicketRepository) DeleteExpired(now time.Time) ([]models.ReleasedNumber, error) {
	query := `
		DELETE FROM tickets
		WHERE status = 'reserved' AND reserved_until < $1
		RETURNING raffle_id, number
	`

	rows, err := r.db.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired reservations: %w", err)
	}
	defer rows.Close()

	var released []models.ReleasedNumber
	for rows.Next() {
		var rn models.ReleasedNumber
		if err := rows.Scan(&rn.RaffleID, &rn.Number); err != nil {
			return nil, fmt.Errorf("failed to scan released number: %w", err)
		}
		released = append(released, rn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read released numbers: %w", err)
	}

	return released, nil
}

func (r *TicketRepository) CountByRaffle(raffleID int64) (sold int, reserved int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'sold'),
			COUNT(*) FILTER (WHERE status = 'reserved' AND reserved_until >= NOW())
		FROM tickets
		WHERE raffle_id = $1
	`

	if err := r.db.QueryRow(query, raffleID).Scan(&sold, &reserved); err != nil {
		return 0, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return sold, reserved, nil
}

func scanTickets(rows *sql.Rows) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		err := rows.Scan(
			&ticket.ID, &ticket.RaffleID, &ticket.Number, &ticket.Status,
			&ticket.PaymentStatus, &ticket.PaymentID, &ticket.PaymentMethod,
			&ticket.ReservedUntil, &ticket.PurchaseDate,
			&ticket.BuyerName, &ticket.BuyerEmail, &ticket.BuyerPhone, &ticket.BuyerTaxID,
			&ticket.CreatedAt, &ticket.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}

	return tickets, nil
}
