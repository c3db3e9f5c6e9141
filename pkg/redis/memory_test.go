package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AutoPartsBot/internal/entity"
)

func TestMemoryStoreCreatesFreshOnMiss(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.Get(context.Background(), "new-session")

	require.NoError(t, err)
	assert.Equal(t, "new-session", session.ID)
	assert.Equal(t, entity.StateIdle, session.State)
	assert.Zero(t, session.TurnCount)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	session.CurrentMake = "Honda"
	session.LastCategory = "Battery"
	session.TurnCount = 3
	session.PushIntent(entity.IntentProductSearch, 3)
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Honda", loaded.CurrentMake)
	assert.Equal(t, "Battery", loaded.LastCategory)
	assert.Equal(t, 3, loaded.TurnCount)
	assert.Equal(t, entity.IntentProductSearch, loaded.LastIntent())
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session, _ := store.Get(ctx, "s1")
	session.TurnCount = 5
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "s1"))

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, fresh.TurnCount)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, _ := store.Get(ctx, "a")
	a.CurrentMake = "Honda"
	require.NoError(t, store.Save(ctx, a))

	b, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, b.CurrentMake)
}
