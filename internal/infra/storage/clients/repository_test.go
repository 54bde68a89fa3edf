package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igextreme/agenda-service/internal/domain"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO clients \(id,name,phone\) VALUES \(\$1,\$2,\$3\) RETURNING created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), "Maria Silva", "11988887777").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	client, err := repo.Create(context.Background(), &domain.Client{
		Name:  "Maria Silva",
		Phone: "11988887777",
	})
	require.NoError(t, err)
	assert.Equal(t, now, client.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicatePhone(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO clients`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "clients_phone_idx"})

	_, err = repo.Create(context.Background(), &domain.Client{
		Name:  "Maria Silva",
		Phone: "11988887777",
	})
	assert.ErrorIs(t, err, ErrDuplicatePhone)
	assert.NotErrorIs(t, err, ErrExecQuery)
}

func TestCreateQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO clients`).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.Create(context.Background(), &domain.Client{
		Name:  "Maria Silva",
		Phone: "11988887777",
	})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByPhone(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, phone, created_at, updated_at FROM clients WHERE phone = \$1 LIMIT 1`).
		WithArgs("11988887777").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at", "updated_at"}).
			AddRow(id, "Maria Silva", "11988887777", now, now))

	client, err := repo.GetByPhone(context.Background(), "11988887777")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", client.Name)
	assert.Equal(t, id, client.ID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPhoneNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT id, name, phone, created_at, updated_at FROM clients`).
		WithArgs("11900000000").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at", "updated_at"}))

	_, err = repo.GetByPhone(context.Background(), "11900000000")
	assert.ErrorIs(t, err, ErrClientNotFound)
}
