package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", "v1"))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, m.Set(ctx, "k", "v2"))
	got, _ = m.Get(ctx, "k")
	assert.Equal(t, "v2", got)
}

func TestFile_RoundTripAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	f, err := NewFile(path)
	require.NoError(t, err)

	_, err = f.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.Set(ctx, "cart", `{"lines":[]}`))

	// A fresh instance sees what the first one wrote.
	reloaded, err := NewFile(path)
	require.NoError(t, err)
	got, err := reloaded.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `{"lines":[]}`, got)
}

func TestFile_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)

	_, err = f.Get(ctx, "anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_CreatesMissingDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "k", "v"))

	got, err := f.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
