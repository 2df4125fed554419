package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAssignsIDAndRounds(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := &TextAnalysis{ID: 77, Text: "I love this!", EmotionLabel: "love", EmotionConfidence: 0.923456, GibberishLabel: "clean", GibberishScore: 0.01}
	require.NoError(t, s.Create(ctx, e))
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, 0.9235, e.EmotionConfidence)

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "I love this!", got.Text)

	rec := got.Record()
	assert.True(t, rec.EmotionConfidence.Valid)
	assert.Equal(t, 0.9235, rec.EmotionConfidence.Value)
}

func TestListOrderAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, text := range []string{"a", "b", "c"} {
		require.NoError(t, s.Create(ctx, &TextAnalysis{Text: text}))
	}

	require.NoError(t, s.Delete(ctx, 2))
	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Text)
	assert.Equal(t, "c", entries[1].Text)

	assert.ErrorIs(t, s.Delete(ctx, 2), ErrNotFound)
	_, err = s.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), &TextAnalysis{Text: "persisted"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
