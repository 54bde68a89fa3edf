package clients

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igextreme/agenda-service/internal/domain"
	clientsRepo "github.com/igextreme/agenda-service/internal/infra/storage/clients"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClientRepo struct {
	clients []*domain.Client
	listErr error
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	for _, client := range f.clients {
		if client.ID == id {
			return client, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", clientsRepo.ErrClientNotFound, id)
}

func (f *fakeClientRepo) List(context.Context) ([]*domain.Client, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clients, nil
}

type fakeAppointmentRepo struct {
	byClient map[uuid.UUID][]*domain.Appointment
	err      error
}

func (f *fakeAppointmentRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byClient[clientID], nil
}

type fakeMessageRepo struct {
	byClient map[uuid.UUID][]*domain.ChatMessage
	created  []*domain.ChatMessage
	err      error
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	msg.ID = uuid.New()
	f.created = append(f.created, msg)
	return msg, nil
}

func (f *fakeMessageRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*domain.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byClient[clientID], nil
}

type fakeFileRepo struct {
	byClient map[uuid.UUID][]*domain.ClientFile
	created  []*domain.ClientFile
	err      error
}

func (f *fakeFileRepo) Create(_ context.Context, file *domain.ClientFile) (*domain.ClientFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	file.ID = uuid.New()
	f.created = append(f.created, file)
	return file, nil
}

func (f *fakeFileRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*domain.ClientFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byClient[clientID], nil
}

func newService(clients *fakeClientRepo, appointments *fakeAppointmentRepo, messages *fakeMessageRepo, files *fakeFileRepo) *Service {
	if appointments == nil {
		appointments = &fakeAppointmentRepo{byClient: map[uuid.UUID][]*domain.Appointment{}}
	}
	if messages == nil {
		messages = &fakeMessageRepo{byClient: map[uuid.UUID][]*domain.ChatMessage{}}
	}
	if files == nil {
		files = &fakeFileRepo{byClient: map[uuid.UUID][]*domain.ClientFile{}}
	}
	return NewService(clients, appointments, messages, files, nopLogger{})
}

func TestListWithHistory(t *testing.T) {
	maria := &domain.Client{ID: uuid.New(), Name: "Maria", Phone: "11988887777"}
	joao := &domain.Client{ID: uuid.New(), Name: "João", Phone: "11977776666"}

	appointments := &fakeAppointmentRepo{byClient: map[uuid.UUID][]*domain.Appointment{
		maria.ID: {{ID: uuid.New(), ClientID: maria.ID, Date: "2025-12-31", Time: "10:00"}},
	}}
	messages := &fakeMessageRepo{byClient: map[uuid.UUID][]*domain.ChatMessage{
		maria.ID: {{ID: uuid.New(), ClientID: maria.ID, Sender: domain.SenderClient, Text: "Oi"}},
	}}
	files := &fakeFileRepo{byClient: map[uuid.UUID][]*domain.ClientFile{}}

	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria, joao}}, appointments, messages, files)

	histories, err := svc.ListWithHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, histories, 2)

	assert.Equal(t, "Maria", histories[0].Client.Name)
	assert.Len(t, histories[0].Appointments, 1)
	assert.Len(t, histories[0].Messages, 1)
	assert.Empty(t, histories[0].Files)

	assert.Equal(t, "João", histories[1].Client.Name)
	assert.Empty(t, histories[1].Appointments)
}

func TestListWithHistoryFailsWhole(t *testing.T) {
	maria := &domain.Client{ID: uuid.New(), Name: "Maria"}
	messages := &fakeMessageRepo{err: errors.New("connection refused")}

	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria}}, nil, messages, nil)

	_, err := svc.ListWithHistory(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetWithHistoryUnknownClient(t *testing.T) {
	svc := newService(&fakeClientRepo{}, nil, nil, nil)

	_, err := svc.GetWithHistory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAddMessage(t *testing.T) {
	maria := &domain.Client{ID: uuid.New(), Name: "Maria"}
	messages := &fakeMessageRepo{byClient: map[uuid.UUID][]*domain.ChatMessage{}}
	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria}}, nil, messages, nil)

	msg, err := svc.AddMessage(context.Background(), maria.ID, domain.SenderProfessional, "Seu horário foi confirmado")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, domain.SenderProfessional, msg.Sender)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Len(t, messages.created, 1)
}

func TestAddMessageValidation(t *testing.T) {
	maria := &domain.Client{ID: uuid.New()}
	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria}}, nil, nil, nil)

	_, err := svc.AddMessage(context.Background(), maria.ID, "robot", "oi")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddMessage(context.Background(), maria.ID, domain.SenderClient, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddMessage(context.Background(), uuid.New(), domain.SenderClient, "oi")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAddFile(t *testing.T) {
	maria := &domain.Client{ID: uuid.New()}
	files := &fakeFileRepo{byClient: map[uuid.UUID][]*domain.ClientFile{}}
	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria}}, nil, nil, files)

	file, err := svc.AddFile(context.Background(), maria.ID, "avaliacao.pdf", "https://cdn.example.com/avaliacao.pdf", domain.FileTypeDocument)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, file.ID)
	assert.Equal(t, domain.FileTypeDocument, file.Type)
	// Upload date is recorded in the display format, like the chat UI shows it.
	assert.Regexp(t, `^\d{2}/\d{2}/\d{4}$`, file.UploadedAt)
}

func TestAddFileValidation(t *testing.T) {
	maria := &domain.Client{ID: uuid.New()}
	svc := newService(&fakeClientRepo{clients: []*domain.Client{maria}}, nil, nil, nil)

	_, err := svc.AddFile(context.Background(), maria.ID, "  ", "", domain.FileTypeImage)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFile(context.Background(), maria.ID, "foto.png", "", "video")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFile(context.Background(), uuid.New(), "foto.png", "", domain.FileTypeImage)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
