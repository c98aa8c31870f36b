package gormstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "top.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_EmptyLoadsZero(t *testing.T) {
	s := openTemp(t)

	v, err := s.LoadTopScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestStore_SaveOverwritesSingleRow(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	require.NoError(t, s.SaveTopScore(ctx, 5))
	require.NoError(t, s.SaveTopScore(ctx, 12))

	v, err := s.LoadTopScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	var rows int64
	require.NoError(t, s.db.Model(&TopScore{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestStore_CancelledContext(t *testing.T) {
	s := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.LoadTopScore(ctx)
	assert.Error(t, err)
}
