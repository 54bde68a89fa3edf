package clientfiles

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/psqlbuilder"
)

// Repository persists file attachment records for clients. The file
// contents live elsewhere; only the metadata is stored here.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, file *domain.ClientFile) (*domain.ClientFile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	file.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("client_files").
		Columns("id", "client_id", "name", "type", "url", "uploaded_at").
		Values(file.ID, file.ClientID, file.Name, file.Type, file.URL, file.UploadedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return file, nil
}

func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.ClientFile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "client_id", "name", "type", "url", "uploaded_at").
		From("client_files").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("uploaded_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ClientFile, 0)
	for rows.Next() {
		var file domain.ClientFile
		if err := rows.Scan(&file.ID, &file.ClientID, &file.Name, &file.Type, &file.URL, &file.UploadedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByClient - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClient - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
