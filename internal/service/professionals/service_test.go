package professionals

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igextreme/agenda-service/internal/domain"
	professionalsRepo "github.com/igextreme/agenda-service/internal/infra/storage/professionals"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProfRepo struct {
	byID      map[uuid.UUID]*domain.Professional
	createErr error
	deleteErr error
	deleted   []uuid.UUID
}

func newFakeProfRepo() *fakeProfRepo {
	return &fakeProfRepo{byID: map[uuid.UUID]*domain.Professional{}}
}

func (f *fakeProfRepo) Create(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	prof.ID = uuid.New()
	f.byID[prof.ID] = prof
	return prof, nil
}

func (f *fakeProfRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	prof, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", professionalsRepo.ErrProfessionalNotFound, id)
	}
	return prof, nil
}

func (f *fakeProfRepo) List(_ context.Context) ([]*domain.Professional, error) {
	profs := make([]*domain.Professional, 0, len(f.byID))
	for _, prof := range f.byID {
		profs = append(profs, prof)
	}
	return profs, nil
}

func (f *fakeProfRepo) Update(_ context.Context, id uuid.UUID, name, avatarURL string) error {
	prof, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("%w: id=%s", professionalsRepo.ErrProfessionalNotFound, id)
	}
	prof.Name = name
	prof.AvatarURL = avatarURL
	return nil
}

func (f *fakeProfRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("%w: id=%s", professionalsRepo.ErrProfessionalNotFound, id)
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCascadeRepo struct {
	err     error
	cleared []uuid.UUID
}

func (f *fakeCascadeRepo) DeleteByProfessional(_ context.Context, professionalID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = append(f.cleared, professionalID)
	return nil
}

func TestCreateProfessional(t *testing.T) {
	repo := newFakeProfRepo()
	svc := NewService(repo, &fakeCascadeRepo{}, &fakeCascadeRepo{}, nopLogger{})

	prof, err := svc.Create(context.Background(), "  Carlos  ", "https://cdn.example.com/carlos.png")
	require.NoError(t, err)
	assert.Equal(t, "Carlos", prof.Name)
	assert.Equal(t, "https://cdn.example.com/carlos.png", prof.AvatarURL)
	assert.NotEqual(t, uuid.Nil, prof.ID)
}

func TestCreateProfessionalDefaultAvatar(t *testing.T) {
	repo := newFakeProfRepo()
	svc := NewService(repo, &fakeCascadeRepo{}, &fakeCascadeRepo{}, nopLogger{})

	prof, err := svc.Create(context.Background(), "Carlos", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAvatarURL("Carlos"), prof.AvatarURL)
	assert.NotEmpty(t, prof.AvatarURL)
}

func TestCreateProfessionalRequiresName(t *testing.T) {
	svc := NewService(newFakeProfRepo(), &fakeCascadeRepo{}, &fakeCascadeRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfessional(t *testing.T) {
	repo := newFakeProfRepo()
	svc := NewService(repo, &fakeCascadeRepo{}, &fakeCascadeRepo{}, nopLogger{})

	prof, err := svc.Create(context.Background(), "Carlos", "")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), prof.ID, "Carlos Souza", "https://cdn.example.com/novo.png")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Souza", updated.Name)
	assert.Equal(t, "https://cdn.example.com/novo.png", updated.AvatarURL)
}

func TestUpdateUnknownProfessional(t *testing.T) {
	svc := NewService(newFakeProfRepo(), &fakeCascadeRepo{}, &fakeCascadeRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), uuid.New(), "Carlos", "")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestDeleteCascades(t *testing.T) {
	repo := newFakeProfRepo()
	availability := &fakeCascadeRepo{}
	appointments := &fakeCascadeRepo{}
	svc := NewService(repo, availability, appointments, nopLogger{})

	prof, err := svc.Create(context.Background(), "Carlos", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), prof.ID))

	// Schedule and bookings are removed with the professional.
	assert.Equal(t, []uuid.UUID{prof.ID}, availability.cleared)
	assert.Equal(t, []uuid.UUID{prof.ID}, appointments.cleared)
	assert.Equal(t, []uuid.UUID{prof.ID}, repo.deleted)
}

func TestDeleteUnknownProfessional(t *testing.T) {
	availability := &fakeCascadeRepo{}
	svc := NewService(newFakeProfRepo(), availability, &fakeCascadeRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Empty(t, availability.cleared)
}

func TestDeleteStopsOnCascadeFailure(t *testing.T) {
	repo := newFakeProfRepo()
	availability := &fakeCascadeRepo{err: errors.New("connection refused")}
	appointments := &fakeCascadeRepo{}
	svc := NewService(repo, availability, appointments, nopLogger{})

	prof, err := svc.Create(context.Background(), "Carlos", "")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), prof.ID)
	assert.ErrorIs(t, err, ErrInternal)

	// The professional record stays when dependents could not be cleared.
	assert.Empty(t, appointments.cleared)
	assert.Empty(t, repo.deleted)
}
