package postgres

import (
	"database/sql"

	"drivesync-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CarRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.ChangeRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		CarRepository:           NewCarRepository(db),
		RentalRepository:        NewRentalRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		ChangeRequestRepository: NewChangeRequestRepository(db),
	}
}
