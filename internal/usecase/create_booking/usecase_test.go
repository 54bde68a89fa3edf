package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igextreme/agenda-service/internal/domain"
	clientsRepo "github.com/igextreme/agenda-service/internal/infra/storage/clients"
	"github.com/igextreme/agenda-service/internal/notifications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClientRepo struct {
	byPhone   map[string]*domain.Client
	getErr    error
	createErr error
	created   []*domain.Client

	// raceClient, when set, is installed on a failing Create to emulate a
	// concurrent writer winning the insert for the same phone.
	raceClient *domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byPhone: map[string]*domain.Client{}}
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	client, ok := f.byPhone[phone]
	if !ok {
		return nil, fmt.Errorf("%w: phone=%s", clientsRepo.ErrClientNotFound, phone)
	}
	return client, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if f.createErr != nil {
		if f.raceClient != nil {
			f.byPhone[f.raceClient.Phone] = f.raceClient
		}
		return nil, f.createErr
	}
	client.ID = uuid.New()
	f.byPhone[client.Phone] = client
	f.created = append(f.created, client)
	return client, nil
}

type fakeAppointmentRepo struct {
	err     error
	created []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, app *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	app.ID = uuid.New()
	app.CreatedAt = time.Now()
	f.created = append(f.created, app)
	return app, nil
}

type fakeProfRepo struct {
	prof *domain.Professional
	err  error
}

func (f *fakeProfRepo) GetByID(context.Context, uuid.UUID) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prof, nil
}

type fakeNotifier struct {
	events []notifications.Event
}

func (f *fakeNotifier) Enqueue(event notifications.Event) {
	f.events = append(f.events, event)
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: uuid.New(),
		Date:           "2025-12-31",
		Time:           "10:00",
		ClientName:     "Maria Silva",
		ClientPhone:    "11988887777",
	}
}

func TestExecuteCreatesClientAndAppointment(t *testing.T) {
	clients := newFakeClientRepo()
	appointments := &fakeAppointmentRepo{}
	profs := &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}
	notifier := &fakeNotifier{}
	uc := NewUseCase(clients, appointments, profs, notifier, nopLogger{})

	req := validRequest()
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, clients.created, 1)
	assert.Equal(t, "Maria Silva", clients.created[0].Name)
	require.Len(t, appointments.created, 1)
	assert.Equal(t, clients.created[0].ID, appointments.created[0].ClientID)

	assert.Equal(t, "Carlos", resp.ProfessionalName)
	assert.Equal(t, req.Date, resp.Date)
	assert.NotEqual(t, uuid.Nil, resp.AppointmentID)

	require.Len(t, notifier.events, 1)
	event := notifier.events[0]
	assert.Equal(t, notifications.EventBookingCreated, event.Kind)
	assert.Equal(t, "Carlos", event.ProfessionalName)
	assert.False(t, event.ProfessionalMissing)
}

func TestExecuteReusesExistingClient(t *testing.T) {
	clients := newFakeClientRepo()
	existing := &domain.Client{ID: uuid.New(), Name: "Maria", Phone: "11988887777"}
	clients.byPhone[existing.Phone] = existing

	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}, &fakeNotifier{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, clients.created)
	assert.Equal(t, existing.ID, resp.ClientID)
}

func TestExecuteLostClientInsertRaceReusesWinner(t *testing.T) {
	clients := newFakeClientRepo()
	winner := &domain.Client{ID: uuid.New(), Name: "Maria", Phone: "11988887777"}
	clients.createErr = fmt.Errorf("%w: phone=%s", clientsRepo.ErrDuplicatePhone, winner.Phone)
	clients.raceClient = winner

	appointments := &fakeAppointmentRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, clients.created)
	assert.Equal(t, winner.ID, resp.ClientID)
	require.Len(t, appointments.created, 1)
	assert.Equal(t, winner.ID, appointments.created[0].ClientID)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, winner.ID, notifier.events[0].ClientID)
}

func TestExecuteLostClientInsertRaceLookupStillMissing(t *testing.T) {
	clients := newFakeClientRepo()
	clients.createErr = fmt.Errorf("%w: phone=11988887777", clientsRepo.ErrDuplicatePhone)

	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrClientCreatedBookingFailed)
	assert.Empty(t, appointments.created)
}

func TestExecuteTrimsContactFields(t *testing.T) {
	clients := newFakeClientRepo()
	uc := NewUseCase(clients, &fakeAppointmentRepo{}, &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}, &fakeNotifier{}, nopLogger{})

	req := validRequest()
	req.ClientName = "  Maria Silva  "
	req.ClientPhone = "  11988887777  "

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "11988887777", resp.ClientPhone)
	assert.Contains(t, clients.byPhone, "11988887777")
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(newFakeClientRepo(), &fakeAppointmentRepo{}, &fakeProfRepo{}, &fakeNotifier{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing professional", func(r *Request) { r.ProfessionalID = uuid.Nil }},
		{"bad date", func(r *Request) { r.Date = "31/12/2025" }},
		{"missing time", func(r *Request) { r.Time = "" }},
		{"bad time", func(r *Request) { r.Time = "10h00" }},
		{"blank name", func(r *Request) { r.ClientName = "   " }},
		{"blank phone", func(r *Request) { r.ClientPhone = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecutePartialFailureLeavesClient(t *testing.T) {
	clients := newFakeClientRepo()
	appointments := &fakeAppointmentRepo{err: errors.New("insert failed")}
	notifier := &fakeNotifier{}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{}, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClientCreatedBookingFailed)

	// No compensation: the fresh client record stays behind.
	assert.Len(t, clients.created, 1)
	assert.Empty(t, notifier.events)
}

func TestExecuteAppointmentFailureForExistingClient(t *testing.T) {
	clients := newFakeClientRepo()
	clients.byPhone["11988887777"] = &domain.Client{ID: uuid.New(), Phone: "11988887777"}
	appointments := &fakeAppointmentRepo{err: errors.New("insert failed")}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrClientCreatedBookingFailed)
}

func TestExecuteClientLookupFailure(t *testing.T) {
	clients := newFakeClientRepo()
	clients.getErr = errors.New("connection refused")
	uc := NewUseCase(clients, &fakeAppointmentRepo{}, &fakeProfRepo{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, clients.created)
}

func TestExecuteMissingProfessionalStillBooks(t *testing.T) {
	clients := newFakeClientRepo()
	appointments := &fakeAppointmentRepo{}
	profs := &fakeProfRepo{err: errors.New("not found")}
	notifier := &fakeNotifier{}
	uc := NewUseCase(clients, appointments, profs, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Profissional", resp.ProfessionalName)
	require.Len(t, notifier.events, 1)
	assert.True(t, notifier.events[0].ProfessionalMissing)
	assert.Equal(t, "Profissional", notifier.events[0].ProfessionalName)
}

func TestExecuteDoubleBookingBothSucceed(t *testing.T) {
	clients := newFakeClientRepo()
	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(clients, appointments, &fakeProfRepo{prof: &domain.Professional{Name: "Carlos"}}, &fakeNotifier{}, nopLogger{})

	first := validRequest()
	second := validRequest()
	second.ProfessionalID = first.ProfessionalID
	second.ClientName = "João"
	second.ClientPhone = "11977776666"

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)

	// Same professional, same date, same time: no collision check.
	assert.Len(t, appointments.created, 2)
}
