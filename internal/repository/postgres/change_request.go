package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

type changeRequestRepository struct {
	db *sql.DB
}

func NewChangeRequestRepository(db *sql.DB) repository.ChangeRequestRepository {
	return &changeRequestRepository{db: db}
}

func (r *changeRequestRepository) Create(ctx context.Context, req *domain.CarChangeRequest) error {
	now := time.Now()
	query := `INSERT INTO car_change_requests (user_id, rental_id, old_car_id, new_car_id, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.UserID, req.RentalID, req.OldCarID, req.NewCarID, req.Status, now, now).Scan(&req.ID)
}

func (r *changeRequestRepository) GetByID(ctx context.Context, id int32) (*domain.CarChangeRequest, error) {
	req := &domain.CarChangeRequest{}
	query := `SELECT id, user_id, rental_id, old_car_id, new_car_id, status, created_at, updated_at FROM car_change_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.RentalID, &req.OldCarID, &req.NewCarID, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *changeRequestRepository) ListPending(ctx context.Context) ([]domain.PendingChangeRequest, error) {
	query := `SELECT r.id, u.username, r.rental_id, c_old.id, c_old.name, c_new.id, c_new.name, r.created_at
	          FROM car_change_requests r
	          JOIN users u ON r.user_id = u.id
	          JOIN cars c_old ON r.old_car_id = c_old.id
	          JOIN cars c_new ON r.new_car_id = c_new.id
	          WHERE r.status = $1
	          ORDER BY r.created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ChangeRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.PendingChangeRequest
	for rows.Next() {
		var p domain.PendingChangeRequest
		if err := rows.Scan(&p.RequestID, &p.Username, &p.RentalID, &p.OldCarID, &p.OldCarName, &p.NewCarID, &p.NewCarName, &p.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, p)
	}
	return reqs, rows.Err()
}

// Approve runs the two writes of an approval in one transaction: the
// status flip is guarded on the row still being Pending, so a request that
// was decided concurrently cannot be processed twice.
func (r *changeRequestRepository) Approve(ctx context.Context, id int32) (*domain.CarChangeRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := decideRequest(ctx, tx, id, domain.ChangeRequestStatusApproved)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE rentals SET car_id=$1 WHERE id=$2`, req.NewCarID, req.RentalID); err != nil {
		return nil, fmt.Errorf("update rental car: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *changeRequestRepository) Reject(ctx context.Context, id int32) (*domain.CarChangeRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := decideRequest(ctx, tx, id, domain.ChangeRequestStatusRejected)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return req, nil
}

func decideRequest(ctx context.Context, tx *sql.Tx, id int32, status domain.ChangeRequestStatus) (*domain.CarChangeRequest, error) {
	req := &domain.CarChangeRequest{}
	query := `UPDATE car_change_requests SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4
	          RETURNING id, user_id, rental_id, old_car_id, new_car_id, status, created_at, updated_at`
	err := tx.QueryRowContext(ctx, query, status, time.Now(), id, domain.ChangeRequestStatusPending).Scan(
		&req.ID, &req.UserID, &req.RentalID, &req.OldCarID, &req.NewCarID, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRequestNotPending
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}
