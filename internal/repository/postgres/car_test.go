package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"drivesync-backend/internal/domain"
)

func TestCarRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "hourly_rate", "car_condition", "status", "img_url"}).
		AddRow(1, "Toyota Corolla", 50, "Good", "Available", "").
		AddRow(2, "Honda Civic", 55, "Excellent", "In Use", "http://img/civic.jpg")

	mock.ExpectQuery("SELECT (.+) FROM cars").WillReturnRows(rows)

	cars, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, domain.CarStatusInUse, cars[1].Status)
	assert.Equal(t, int64(55), cars[1].HourlyRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewCarRepository(db)

		mock.ExpectExec("UPDATE cars SET status").
			WithArgs(domain.CarStatusMaintenance, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStatus(ctx, 1, domain.CarStatusMaintenance)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Car", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewCarRepository(db)

		mock.ExpectExec("UPDATE cars SET status").
			WithArgs(domain.CarStatusAvailable, int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(ctx, 404, domain.CarStatusAvailable)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
