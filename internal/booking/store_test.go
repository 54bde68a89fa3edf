package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	session := store.Create()
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, StepSelectProfessional, session.Flow.Step)

	got, err := store.Get(session.Token)
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, store.Len())
}

func TestStoreUnknownToken(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	_, err := store.Get("no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	defer store.Close()

	session := store.Create()
	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, store.Len())
}

func TestStoreSlidingTTL(t *testing.T) {
	store := NewStore(60 * time.Millisecond)
	defer store.Close()

	session := store.Create()

	// Keep touching the session; each Get pushes expiry forward.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err := store.Get(session.Token)
		require.NoError(t, err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	session := store.Create()
	store.Delete(session.Token)

	_, err := store.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	a := store.Create()
	b := store.Create()
	require.NotEqual(t, a.Token, b.Token)

	err := a.Do(func(f *Flow) error {
		f.Date = "2025-12-31"
		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, b.Flow.Date)
	assert.Equal(t, 2, store.Len())
}

func TestStoreCloseIsIdempotent(t *testing.T) {
	store := NewStore(time.Minute)
	store.Close()
	assert.NotPanics(t, store.Close)
}
