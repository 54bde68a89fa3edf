package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/psqlbuilder"
)

// Repository persists clients.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new client with a generated id.
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	client.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "name", "phone").
		Values(client.ID, client.Name, client.Phone).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: Create - phone=%s: %v", ErrDuplicatePhone, client.Phone, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return client, nil
}

// GetByID fetches one client.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByPhone fetches the first client with the given phone. Phone is the
// de-facto natural key during booking; not-found is reported with
// ErrClientNotFound and is routinely expected by callers.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone}, "GetByPhone")
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, op string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "created_at", "updated_at").
		From("clients").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var client domain.Client
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID, &client.Name, &client.Phone, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}

// List returns all clients ordered by name.
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "created_at", "updated_at").
		From("clients").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&client.ID, &client.Name, &client.Phone, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		client.CreatedAt = createdAt.Time
		client.UpdatedAt = updatedAt.Time
		result = append(result, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
