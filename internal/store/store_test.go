package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMissingKey(t *testing.T) {
	s := NewMemory()
	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemorySetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(v))

	require.NoError(t, s.Remove(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, "k", []byte(`[1]`)))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'X'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), again)
}

func TestFileMissingKey(t *testing.T) {
	s := NewFile(filepath.Join(t.TempDir(), "data.json"))
	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFile(path)

	require.NoError(t, s.Set(ctx, "a", []byte(`"one"`)))
	require.NoError(t, s.Set(ctx, "b", []byte(`[2,3]`)))

	// A second instance over the same file sees everything.
	reopened := NewFile(path)
	v, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"one"`), v)

	require.NoError(t, reopened.Remove(ctx, "a"))
	v, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2,3]`), v)
}

func TestFileSetKeepsUnrelatedKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	// Two handles over the same file must not clobber each other's keys.
	first := NewFile(path)
	second := NewFile(path)
	require.NoError(t, first.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, second.Set(ctx, "b", []byte(`2`)))

	v, err := first.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`1`), v)
}
