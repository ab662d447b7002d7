package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroute/core"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func fixture() []core.Node {
	return []core.Node{
		{ID: "DEL", DisplayName: "Indira Gandhi International", Location: "New Delhi, Delhi", Latitude: 28.5665, Longitude: 77.1031},
		{ID: "BOM", DisplayName: "Chhatrapati Shivaji Maharaj International", Location: "Mumbai, Maharashtra", Latitude: 19.0887, Longitude: 72.8679},
		{ID: "AGX", DisplayName: "Agatti", Latitude: 10.8237, Longitude: 72.1760},
	}
}

func TestStore_EmptyDatabase(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	nodes, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, nodes)

	_, ok, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RoundTripKeepsOrder(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNodes(ctx, fixture()))
	got, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)

	_, ok, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_SaveReplaces(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNodes(ctx, fixture()))
	require.NoError(t, s.SaveNodes(ctx, fixture()[1:2]))

	got, err := s.Nodes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BOM", got[0].ID)
}

func TestStore_DuplicateRollsBack(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, s.SaveNodes(ctx, fixture()))

	dup := append(fixture(), core.Node{ID: "DEL"})
	require.Error(t, s.SaveNodes(ctx, dup))

	got, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got, "failed save must leave the previous catalogue")
}

func TestStore_FilePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airroute.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveNodes(ctx, fixture()))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)
}
