package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/catalog/internal/index"
	"github.com/studyforge/catalog/internal/registry"
	"github.com/studyforge/catalog/pkg/types"
)

func buildFixture(t *testing.T) (*registry.Registry, *index.Index) {
	t.Helper()
	reg := registry.New()
	topics := []*types.Topic{
		{
			ID: "acid-properties", Title: "ACID Properties", Subtitle: "s",
			Summary: "transaction guarantees", Explanation: "e",
			Category:  types.CategoryTransactions,
			KeyPoints: []string{"Atomicity", "Durability"},
			Resources: []types.Resource{
				{Title: "docs", URL: "https://example.com/acid", Type: types.ResourceDocumentation},
			},
			CodeExamples: []types.CodeExample{
				{Title: "tx", Language: "sql", Code: "BEGIN; COMMIT;"},
			},
			Questions: []types.QAPair{
				{Question: "What is atomicity?", Answer: "All or nothing."},
			},
		},
		{
			ID: "tcp-basics", Title: "TCP Basics", Subtitle: "s",
			Summary: "reliable streams", Explanation: "e",
			Category: types.CategoryNetworking,
		},
	}
	for _, tp := range topics {
		require.NoError(t, reg.Register(tp))
	}
	reg.Freeze()
	return reg, index.Build(reg.All())
}

func TestSnapshotFields(t *testing.T) {
	reg, idx := buildFixture(t)
	builtAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	snap := Snapshot(reg, idx, "build-123", builtAt)

	assert.Equal(t, types.FormatVersion, snap.FormatVersion)
	assert.Equal(t, "build-123", snap.BuildID)
	assert.Equal(t, builtAt, snap.BuiltAt)
	require.Len(t, snap.Topics, 2)
	assert.Equal(t, "acid-properties", snap.Topics[0].ID)
	assert.Equal(t, "tcp-basics", snap.Topics[1].ID)
}

func TestWriteReadRoundTrip(t *testing.T) {
	reg, idx := buildFixture(t)
	snap := Snapshot(reg, idx, "build-123", time.Now())
	path := filepath.Join(t.TempDir(), "catalog.json")

	require.NoError(t, WriteJSON(snap, path))

	got, err := ReadJSON(path)
	require.NoError(t, err)

	// The topic sequence and index groupings survive the round trip.
	require.Len(t, got.Topics, len(snap.Topics))
	for i := range snap.Topics {
		assert.Equal(t, snap.Topics[i], got.Topics[i])
	}
	assert.Equal(t, snap.Index, got.Index)
	assert.Equal(t, snap.BuildID, got.BuildID)
}

func TestWriteJSONDeterministic(t *testing.T) {
	reg, idx := buildFixture(t)
	builtAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	require.NoError(t, WriteJSON(Snapshot(reg, idx, "fixed-id", builtAt), first))
	require.NoError(t, WriteJSON(Snapshot(reg, idx, "fixed-id", builtAt), second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same registry state must yield byte-identical output")
}

func TestWriteJSONLeavesNoTempFiles(t *testing.T) {
	reg, idx := buildFixture(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	require.NoError(t, WriteJSON(Snapshot(reg, idx, "id", time.Now()), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "catalog.json", entries[0].Name())
}

func TestReadJSONRejectsWrongFormatVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"formatVersion": 99, "topics": []}`), 0o644))

	_, err := ReadJSON(path)
	assert.ErrorIs(t, err, types.ErrFormatVersion)
}

func TestReadJSONRejectsInvalidTopics(t *testing.T) {
	reg, idx := buildFixture(t)
	snap := Snapshot(reg, idx, "build-123", time.Now())
	// Simulate a hand-edited artifact: one topic loses its category.
	snap.Topics[1].Category = ""
	path := filepath.Join(t.TempDir(), "edited.json")
	require.NoError(t, WriteJSON(snap, path))

	_, err := ReadJSON(path)
	require.ErrorIs(t, err, types.ErrSnapshotInvalid)
	assert.Contains(t, err.Error(), "tcp-basics")
}

func TestReadJSONMissingFile(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
