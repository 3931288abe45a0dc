package repository

import (
	"testing"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *models.Catalog) {
	t.Helper()
	catalog, err := models.LoadCatalog()
	require.NoError(t, err)
	return NewSessionStore(zap.NewNop(), ttl), catalog
}

func TestSessionStore_StartGetRemove(t *testing.T) {
	store, catalog := newTestStore(t, time.Hour)

	session := store.Start("client-1", catalog)
	require.NotEmpty(t, session.ID)
	assert.Len(t, session.Entries, models.NumExercises)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Remove(session.ID)
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSessionStore_GetUnknown(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	_, err := store.Get("nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSessionStore_SweepDiscardsOnlyStaleSessions(t *testing.T) {
	store, catalog := newTestStore(t, 30*time.Minute)

	stale := store.Start("client-1", catalog)
	fresh := store.Start("client-2", catalog)

	// Backdate the first session past the TTL.
	stale.UpdatedAt = time.Now().UTC().Add(-time.Hour)

	store.sweep(time.Now().UTC())

	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, models.ErrNotFound, "stale session is discarded without persistence")

	_, err = store.Get(fresh.ID)
	assert.NoError(t, err, "fresh session survives the sweep")
}

func TestSessionStore_IndependentSessions(t *testing.T) {
	store, catalog := newTestStore(t, time.Hour)

	first := store.Start("client-1", catalog)
	second := store.Start("client-2", catalog)

	two := 2
	require.NoError(t, first.UpdateEntry("deepSquat", models.EntryUpdate{Score: &two}))

	assert.True(t, first.Entries["deepSquat"].Scored())
	assert.False(t, second.Entries["deepSquat"].Scored(), "sessions share no state")
}
