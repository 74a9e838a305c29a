package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalops/sigconsole/internal/client/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sigconsole_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	auth := &storage.AuthData{
		Username:    "alice",
		AccessToken: "token-abc",
		SavedAt:     time.Now().Unix(),
	}

	// GetAuth before any save reports the empty slot
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.Username, got.Username)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.SavedAt, got.SavedAt)

	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Deleting an already empty slot is an error the caller may ignore
	err = store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_SaveAuth_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Username: "alice", AccessToken: "old"}))
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Username: "bob", AccessToken: "new"}))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "new", got.AccessToken)
}

func TestStorage_ClientID_StableAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sigconsole_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	first, err := store.ClientID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	// Same handle returns the same id
	again, err := store.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, store.Close())

	// The id survives reopening the database
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	reopened, err := store.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, reopened)
}
