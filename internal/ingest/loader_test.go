package ingest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestLoadYAMLAndJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "content/transactions/acid.yaml", `
id: acid-properties
title: ACID Properties
`)
	writeFile(t, fsys, "content/networking/tcp.json", `{
  "id": "tcp-basics",
  "title": "TCP Basics"
}`)
	writeFile(t, fsys, "content/README.md", "not a topic file")

	candidates, err := New(fsys, "content").Load()
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	// Lexical path order: networking before transactions.
	assert.Equal(t, "networking/tcp.json", candidates[0].Path)
	assert.Equal(t, "tcp-basics", candidates[0].Fields["id"])
	assert.Equal(t, "transactions/acid.yaml", candidates[1].Path)
	assert.Equal(t, "acid-properties", candidates[1].Fields["id"])
}

func TestLoadMultiDocumentYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "content/concurrency/locks.yaml", `
id: mutexes
title: Mutexes
---
id: semaphores
title: Semaphores
---
id: rwlocks
title: Read-Write Locks
`)

	candidates, err := New(fsys, "content").Load()
	require.NoError(t, err)

	require.Len(t, candidates, 3)
	for i, wantID := range []string{"mutexes", "semaphores", "rwlocks"} {
		assert.Equal(t, wantID, candidates[i].Fields["id"], "document order preserved")
		assert.Equal(t, i, candidates[i].Doc)
	}
}

func TestLoadJSONArray(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "content/patterns/creational.json", `[
  {"id": "singleton", "title": "Singleton"},
  {"id": "factory", "title": "Factory Method"}
]`)

	candidates, err := New(fsys, "content").Load()
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, "singleton", candidates[0].Fields["id"])
	assert.Equal(t, "factory", candidates[1].Fields["id"])
}

func TestLoadInjectsCategoryFromDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "content/concurrency/deadlocks.yaml", `
id: deadlocks
title: Deadlocks
`)
	writeFile(t, fsys, "content/indexing/declared.yaml", `
id: hash-indexes
title: Hash Indexes
category: fundamentals
`)
	writeFile(t, fsys, "content/rootfile.yaml", `
id: rootless
title: At Content Root
`)

	candidates, err := New(fsys, "content").Load()
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	byID := make(map[string]Candidate)
	for _, c := range candidates {
		byID[c.Fields["id"].(string)] = c
	}

	assert.Equal(t, "concurrency", byID["deadlocks"].Fields["category"],
		"directory name injected when undeclared")
	assert.Equal(t, "fundamentals", byID["hash-indexes"].Fields["category"],
		"authored category wins over the directory")
	_, hasCategory := byID["rootless"].Fields["category"]
	assert.False(t, hasCategory, "root-level files get no injected category")
}

func TestLoadUnparseableFileAborts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "content/fundamentals/ok.yaml", `
id: ok
title: Fine
`)
	writeFile(t, fsys, "content/fundamentals/broken.json", `{"id": "unclosed`)

	_, err := New(fsys, "content").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLoadEmptyContentDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("content", 0o755))

	candidates, err := New(fsys, "content").Load()
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestValidCategoryDirs(t *testing.T) {
	dirs := ValidCategoryDirs()
	assert.Contains(t, dirs, "fundamentals")
	assert.Contains(t, dirs, "concurrency")
	assert.Len(t, dirs, 10)
}
