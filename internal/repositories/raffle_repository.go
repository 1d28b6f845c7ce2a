package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/biyonik/raffle-pix-api/internal/models"
)

type RaffleRepository struct {
	db *sql.DB
}

func NewRaffleRepository(db *sql.DB) *RaffleRepository {
	return &RaffleRepository{db: db}
}

func (r *RaffleRepository) FindByID(id int64) (*models.Raffle, error) {
	query := `
		SELECT id, name, slug, COALESCE(description, ''), ticket_price, total_numbers,
			status, draw_date, min_promo_quantity, promo_price, created_at, updated_at
		FROM raffles
		WHERE id = $1
	`

	return r.scanRaffle(r.db.QueryRow(query, id))
}

func (r *RaffleRepository) FindBySlug(slug string) (*models.Raffle, error) {
	query := `
		SELECT id, name, slug, COALESCE(description, ''), ticket_price, total_numbers,
			status, draw_date, min_promo_quantity, promo_price, created_at, updated_at
		FROM raffles
		WHERE slug = $1
	`

	return r.scanRaffle(r.db.QueryRow(query, slug))
}

func (r *RaffleRepository) FindActive() ([]*models.Raffle, error) {
	query := `
		SELECT id, name, slug, COALESCE(description, ''), ticket_price, total_numbers,
			status, draw_date, min_promo_quantity, promo_price, created_at, updated_at
		FROM raffles
		WHERE status = 'active'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to find active raffles: %w", err)
	}
	defer rows.Close()

	var raffles []*models.Raffle
	for rows.Next() {
		raffle := &models.Raffle{}
		err := rows.Scan(
			&raffle.ID, &raffle.Name, &raffle.Slug, &raffle.Description,
			&raffle.TicketPrice, &raffle.TotalNumbers, &raffle.Status, &raffle.DrawDate,
			&raffle.MinPromoQuantity, &raffle.PromoPrice,
			&raffle.CreatedAt, &raffle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan raffle: %w", err)
		}
		raffles = append(raffles, raffle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read raffles: %w", err)
	}

	return raffles, nil
}

func (r *RaffleRepository) scanRaffle(row *sql.Row) (*models.Raffle, error) {
	raffle := &models.Raffle{}
	err := row.Scan(
		&raffle.ID, &raffle.Name, &raffle.Slug, &raffle.Description,
		&raffle.TicketPrice, &raffle.TotalNumbers, &raffle.Status, &raffle.DrawDate,
		&raffle.MinPromoQuantity, &raffle.PromoPrice,
		&raffle.CreatedAt, &raffle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("failed to scan raffle: %w", err)
	}

	return raffle, nil
}
