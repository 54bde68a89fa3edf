package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT value FROM settings WHERE key = \$1`).
		WithArgs("whatsapp_config").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).
			AddRow([]byte(`{"url":"https://api.example.com"}`)))

	raw, err := repo.Get(context.Background(), "whatsapp_config")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://api.example.com"}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT value FROM settings`).
		WithArgs("webhook_config").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = repo.Get(context.Background(), "webhook_config")
	assert.ErrorIs(t, err, ErrSettingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT value FROM settings`).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.Get(context.Background(), "whatsapp_config")
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestUpsert(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	doc := json.RawMessage(`{"bookingUrl":"https://hooks.example.com/new"}`)

	mock.ExpectExec(`INSERT INTO settings \(key,value\) VALUES \(\$1,\$2\) ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED\.value, updated_at = NOW\(\)`).
		WithArgs("webhook_config", []byte(doc)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), "webhook_config", doc)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO settings`).
		WillReturnError(errors.New("disk full"))

	err = repo.Upsert(context.Background(), "webhook_config", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrExecQuery)
}
