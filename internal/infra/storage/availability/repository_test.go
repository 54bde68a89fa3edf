package availability

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	profID := uuid.New()
	times := []string{"09:00", "10:00"}

	mock.ExpectQuery(`INSERT INTO availability \(professional_id,date,times\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(professional_id, date\) DO UPDATE SET times = EXCLUDED\.times, updated_at = NOW\(\) RETURNING times`).
		WithArgs(profID, "2025-12-31", pq.StringArray(times)).
		WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow(pq.StringArray(times)))

	stored, err := repo.Upsert(context.Background(), profID, "2025-12-31", times)
	require.NoError(t, err)
	assert.Equal(t, times, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertEmptySet(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	profID := uuid.New()

	mock.ExpectQuery(`INSERT INTO availability`).
		WithArgs(profID, "2025-12-31", pq.StringArray{}).
		WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow(pq.StringArray{}))

	stored, err := repo.Upsert(context.Background(), profID, "2025-12-31", []string{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGetTimes(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	profID := uuid.New()

	mock.ExpectQuery(`SELECT times FROM availability WHERE date = \$1 AND professional_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"times"}).
			AddRow(pq.StringArray{"09:00", "10:00"}))

	times, err := repo.GetTimes(context.Background(), profID, "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, times)
}

func TestGetTimesNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT times FROM availability`).
		WillReturnRows(sqlmock.NewRows([]string{"times"}))

	_, err = repo.GetTimes(context.Background(), uuid.New(), "2025-12-31")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapByProfessional(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	profID := uuid.New()

	mock.ExpectQuery(`SELECT date, times FROM availability WHERE professional_id = \$1 ORDER BY date ASC`).
		WithArgs(profID).
		WillReturnRows(sqlmock.NewRows([]string{"date", "times"}).
			AddRow("2025-12-01", pq.StringArray{"09:00"}).
			AddRow("2025-12-15", pq.StringArray{}))

	result, err := repo.MapByProfessional(context.Background(), profID)
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, []string{"09:00"}, result["2025-12-01"])
	assert.Empty(t, result["2025-12-15"])
}

func TestDeleteByProfessional(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	profID := uuid.New()

	mock.ExpectExec(`DELETE FROM availability WHERE professional_id = \$1`).
		WithArgs(profID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteByProfessional(context.Background(), profID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryFailuresWrapped(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	boom := errors.New("connection refused")

	mock.ExpectQuery(`SELECT times FROM availability`).WillReturnError(boom)
	_, err = repo.GetTimes(context.Background(), uuid.New(), "2025-12-31")
	assert.ErrorIs(t, err, ErrScanRow)

	mock.ExpectQuery(`SELECT date, times FROM availability`).WillReturnError(boom)
	_, err = repo.MapByProfessional(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExecQuery)
}
