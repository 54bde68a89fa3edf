package chatmessages

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/psqlbuilder"
)

// Repository persists chat messages. Append-only per client.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create appends a message to a client's history.
func (r *Repository) Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	msg.ID = uuid.New()

	query, args, err := psqlbuilder.Insert("chat_messages").
		Columns("id", "client_id", "sender", "text", "timestamp").
		Values(msg.ID, msg.ClientID, msg.Sender, msg.Text, msg.Timestamp).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// ListByClient returns a client's messages in insertion/timestamp order.
func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "client_id", "sender", "text", "timestamp").
		From("chat_messages").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("timestamp ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.ClientID, &msg.Sender, &msg.Text, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: ListByClient - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClient - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
