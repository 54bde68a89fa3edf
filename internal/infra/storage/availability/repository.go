package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/psqlbuilder"
)

// Repository persists per-(professional, date) slot sets. Each save fully
// replaces the set for its key; there is no incremental mutation at the
// storage boundary.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert stores the slot set for (professionalID, date), replacing any prior
// set for that exact key, and returns the set as actually stored so callers
// can confirm the write.
func (r *Repository) Upsert(ctx context.Context, professionalID uuid.UUID, date string, times []string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("professional_id", "date", "times").
		Values(professionalID, date, pq.StringArray(times)).
		Suffix("ON CONFLICT (professional_id, date) DO UPDATE SET times = EXCLUDED.times, updated_at = NOW()").
		Suffix("RETURNING times").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var stored pq.StringArray
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stored); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return []string(stored), nil
}

// GetTimes fetches the saved slot set for the exact (professionalID, date)
// key. ErrNotFound means no set was ever saved for the key.
func (r *Repository) GetTimes(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("times").
		From("availability").
		Where(squirrel.Eq{"professional_id": professionalID, "date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimes - build select query: %v", ErrBuildQuery, err)
	}

	var times pq.StringArray
	err = executor.QueryRowContext(ctx, query, args...).Scan(&times)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimes - scan times: %v", ErrScanRow, err)
	}

	return []string(times), nil
}

// MapByProfessional returns every saved date for one professional as a
// date-keyed map.
func (r *Repository) MapByProfessional(ctx context.Context, professionalID uuid.UUID) (domain.AvailabilityMap, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "times").
		From("availability").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MapByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MapByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(domain.AvailabilityMap)
	for rows.Next() {
		var date string
		var times pq.StringArray
		if err := rows.Scan(&date, &times); err != nil {
			return nil, fmt.Errorf("%w: MapByProfessional - scan row: %v", ErrScanRow, err)
		}
		result[date] = []string(times)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MapByProfessional - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// DeleteByProfessional removes every saved date for the professional. Used by
// the explicit cascade when a professional is removed.
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
