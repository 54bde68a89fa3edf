package appointments

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/psqlbuilder"
)

// Repository persists appointments. Rows are created on booking and deleted
// on cancellation; there is no update path. No uniqueness constraint exists
// on (professional_id, date, time): concurrent bookings of the same slot both
// insert successfully.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment with a generated id.
func (r *Repository) Create(ctx context.Context, app *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	app.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("id", "client_id", "professional_id", "date", "time").
		Values(app.ID, app.ClientID, app.ProfessionalID, app.Date, app.Time).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time

	return app, nil
}

// GetByID fetches one appointment.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "client_id", "professional_id", "date", "time", "created_at").
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var app domain.Appointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID, &app.ClientID, &app.ProfessionalID, &app.Date, &app.Time, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	app.CreatedAt = createdAt.Time

	return &app, nil
}

// ListByClient returns a client's appointments ordered by date and time.
func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID}, "ListByClient")
}

func (r *Repository) list(ctx context.Context, pred squirrel.Eq, op string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "client_id", "professional_id", "date", "time", "created_at").
		From("appointments").
		Where(pred).
		OrderBy("date ASC", "time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		var app domain.Appointment
		var createdAt sql.NullTime

		if err := rows.Scan(&app.ID, &app.ClientID, &app.ProfessionalID, &app.Date, &app.Time, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		app.CreatedAt = createdAt.Time
		result = append(result, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

// Delete removes exactly one appointment.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteByProfessional removes every appointment of the professional. Used by
// the explicit cascade when a professional is removed.
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
