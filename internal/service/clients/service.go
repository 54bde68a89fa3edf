package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	clientsRepo "github.com/igextreme/agenda-service/internal/infra/storage/clients"
	"github.com/igextreme/agenda-service/internal/service/clients/models"
)

// Service exposes the admin's view of the client base: the full history
// per client plus the append-only chat and file records.
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	messageRepo     ChatMessageRepository
	fileRepo        ClientFileRepository
	logger          Logger
}

func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	messageRepo ChatMessageRepository,
	fileRepo ClientFileRepository,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		messageRepo:     messageRepo,
		fileRepo:        fileRepo,
		logger:          logger,
	}
}

// ListWithHistory returns every client with their bookings, messages and
// files. A failure loading one client's sub-records fails the whole call;
// a partial CRM view is worse than an error.
func (s *Service) ListWithHistory(ctx context.Context) ([]*models.ClientHistory, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListWithHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWithHistory - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ClientHistory, 0, len(clients))
	for _, client := range clients {
		history, err := s.loadHistory(ctx, client)
		if err != nil {
			return nil, err
		}
		result = append(result, history)
	}
	return result, nil
}

// GetWithHistory returns one client with their full history.
func (s *Service) GetWithHistory(ctx context.Context, id uuid.UUID) (*models.ClientHistory, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetWithHistory: repository error for client=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetWithHistory - repository error: %v", ErrInternal, err)
	}
	return s.loadHistory(ctx, client)
}

func (s *Service) loadHistory(ctx context.Context, client *domain.Client) (*models.ClientHistory, error) {
	appointments, err := s.appointmentRepo.ListByClient(ctx, client.ID)
	if err != nil {
		s.logger.Error("loadHistory: appointments failed for client=%s: %v", client.ID, err)
		return nil, fmt.Errorf("%w: loadHistory - appointments: %v", ErrInternal, err)
	}
	messages, err := s.messageRepo.ListByClient(ctx, client.ID)
	if err != nil {
		s.logger.Error("loadHistory: messages failed for client=%s: %v", client.ID, err)
		return nil, fmt.Errorf("%w: loadHistory - messages: %v", ErrInternal, err)
	}
	files, err := s.fileRepo.ListByClient(ctx, client.ID)
	if err != nil {
		s.logger.Error("loadHistory: files failed for client=%s: %v", client.ID, err)
		return nil, fmt.Errorf("%w: loadHistory - files: %v", ErrInternal, err)
	}

	return &models.ClientHistory{
		Client:       client,
		Appointments: appointments,
		Messages:     messages,
		Files:        files,
	}, nil
}

// AddMessage appends a chat message to the client's history.
func (s *Service) AddMessage(ctx context.Context, clientID uuid.UUID, sender domain.ChatSender, text string) (*domain.ChatMessage, error) {
	if !sender.Valid() {
		return nil, fmt.Errorf("%w: unknown sender %q", ErrInvalidInput, sender)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrInvalidInput)
	}
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	msg, err := s.messageRepo.Create(ctx, &domain.ChatMessage{
		ClientID:  clientID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Error("AddMessage: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: AddMessage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Chat message added: client=%s sender=%s", clientID, sender)
	return msg, nil
}

// AddFile appends a file record to the client's history. Only metadata is
// stored; the URL is kept as an opaque reference.
func (s *Service) AddFile(ctx context.Context, clientID uuid.UUID, name, url string, fileType domain.FileType) (*domain.ClientFile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if !fileType.Valid() {
		return nil, fmt.Errorf("%w: unknown file type %q", ErrInvalidInput, fileType)
	}
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	file, err := s.fileRepo.Create(ctx, &domain.ClientFile{
		ClientID:   clientID,
		Name:       name,
		URL:        url,
		Type:       fileType,
		UploadedAt: time.Now().Format(domain.DisplayDateFormat),
	})
	if err != nil {
		s.logger.Error("AddFile: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: AddFile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Client file added: client=%s name=%q type=%s", clientID, name, fileType)
	return file, nil
}

func (s *Service) ensureClient(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			return ErrClientNotFound
		}
		s.logger.Error("ensureClient: repository error for client=%s: %v", clientID, err)
		return fmt.Errorf("%w: ensureClient - repository error: %v", ErrInternal, err)
	}
	return nil
}
