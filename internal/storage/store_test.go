package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryReadMissingKey(t *testing.T) {
	s := NewMemory()
	_, ok, err := s.Read(context.Background(), "games")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "games", `[{"id":"g1"}]`))

	v, ok, err := s.Read(ctx, "games")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"g1"}]`, v)

	require.NoError(t, s.Write(ctx, "games", "[]"))
	v, _, _ = s.Read(ctx, "games")
	require.Equal(t, "[]", v)
}

func TestFileRoundTrip(t *testing.T) {
	s, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := s.Read(ctx, "games")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Write(ctx, "games", `[{"id":"g1"}]`))

	v, ok, err := s.Read(ctx, "games")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"g1"}]`, v)
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Write(ctx, "games", "[]"))

	s2, err := NewFile(dir)
	require.NoError(t, err)
	v, ok, err := s2.Read(ctx, "games")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", v)
}

func TestDBUpsert(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "unoscore.db"))
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := s.Read(ctx, "games")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Write(ctx, "games", "[]"))
	require.NoError(t, s.Write(ctx, "games", `[{"id":"g1"}]`))

	v, ok, err := s.Read(ctx, "games")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"g1"}]`, v)
}
