package credstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barhopapp/barhop/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestGetAbsent(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token, "missing file must read as signed out, not as an error")
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-abc123", "user@example.com"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", token)

	email, err := store.GetEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestSetCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "credentials.json")
	store := New(path)

	require.NoError(t, store.Set(context.Background(), "tok", ""))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", ""))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClearIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestGetCorruptFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, err := store.Get(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeStoreRead))
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "old-token", "a@example.com"))
	require.NoError(t, store.Set(ctx, "new-token", "b@example.com"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestContextCancelled(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = store.Set(ctx, "tok", "")
	assert.ErrorIs(t, err, context.Canceled)
}
