package counter_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go-emprec/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupCounterTest(t *testing.T) (counter.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return counter.NewRepository(gormDB), mock
}

func TestCounterRepository_NextValue(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT nextval($1::regclass)`)

	t.Run("success", func(t *testing.T) {
		repo, mock := setupCounterTest(t)
		mock.ExpectQuery(query).
			WithArgs("employees_id_seq").
			WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(int64(42)))

		got, err := repo.NextValue(context.Background(), "employees_id_seq")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error is wrapped", func(t *testing.T) {
		repo, mock := setupCounterTest(t)
		dbErr := errors.New("relation does not exist")
		mock.ExpectQuery(query).WillReturnError(dbErr)

		_, err := repo.NextValue(context.Background(), "missing_seq")

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "missing_seq")
	})
}
