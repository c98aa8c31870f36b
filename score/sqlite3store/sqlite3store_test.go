package sqlite3store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skip("go-sqlite3 needs cgo")
	}
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "top.db")

	s := openTemp(t, path)
	v, err := s.LoadTopScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, s.SaveTopScore(ctx, 9))
	require.NoError(t, s.SaveTopScore(ctx, 31))
	require.NoError(t, s.Close())

	s = openTemp(t, path)
	defer s.Close()
	v, err = s.LoadTopScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 31, v)
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t, "")
	defer s.Close()

	require.NoError(t, s.SaveTopScore(ctx, 3))
	v, err := s.LoadTopScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
