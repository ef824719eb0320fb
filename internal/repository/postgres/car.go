package postgres

import (
	"context"
	"database/sql"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, name, hourly_rate, car_condition, status, img_url FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.HourlyRate, &c.Condition, &c.Status, &c.ImgURL); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, name, hourly_rate, car_condition, status, img_url FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.HourlyRate, &c.Condition, &c.Status, &c.ImgURL)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	query := `UPDATE cars SET status=$1 WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
