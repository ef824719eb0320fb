package postgres

import (
	"context"
	"database/sql"
	"time"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (user_id, car_id, start_time, end_time, hours_rented, rental_mode, delivery_location, total_cost, created_at, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.UserID, rt.CarID, rt.StartTime, rt.EndTime, rt.HoursRented, rt.Mode, rt.DeliveryLocation, rt.TotalCost, time.Now(), rt.Status,
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, user_id, car_id, start_time, end_time, hours_rented, rental_mode, delivery_location, total_cost, created_at, status
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.UserID, &rt.CarID, &rt.StartTime, &rt.EndTime, &rt.HoursRented, &rt.Mode, &rt.DeliveryLocation, &rt.TotalCost, &rt.CreatedAt, &rt.Status,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET car_id=$1, start_time=$2, end_time=$3, hours_rented=$4, rental_mode=$5, delivery_location=$6, total_cost=$7, status=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		rt.CarID, rt.StartTime, rt.EndTime, rt.HoursRented, rt.Mode, rt.DeliveryLocation, rt.TotalCost, rt.Status, rt.ID,
	)
	return err
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.RentalWithCar, error) {
	query := `SELECT r.id, r.user_id, r.car_id, r.start_time, r.end_time, r.hours_rented, r.rental_mode, r.delivery_location, r.total_cost, r.created_at, r.status, c.name
	          FROM rentals r
	          JOIN cars c ON r.car_id = c.id
	          WHERE r.user_id = $1
	          ORDER BY r.start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithCar
	for rows.Next() {
		var rt domain.RentalWithCar
		if err := rows.Scan(
			&rt.ID, &rt.UserID, &rt.CarID, &rt.StartTime, &rt.EndTime, &rt.HoursRented, &rt.Mode, &rt.DeliveryLocation, &rt.TotalCost, &rt.CreatedAt, &rt.Status, &rt.CarName,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE rentals SET status=$1 WHERE status=$2 AND end_time < $3`
	res, err := r.db.ExecContext(ctx, query, domain.RentalStatusCompleted, domain.RentalStatusActive, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
