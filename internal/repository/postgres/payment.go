package postgres

import (
	"context"
	"database/sql"
	"time"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount, reference, payment_time) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.RentalID, p.Amount, p.Reference, time.Now()).Scan(&p.ID)
}
