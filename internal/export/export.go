// Package export serializes one catalog build into its external
// representations: a versioned JSON snapshot and, optionally, a SQLite
// database for search-service consumption.
//
// Export is total and deterministic: the same registry state always yields
// byte-identical JSON aside from the build id and build timestamp fields.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/studyforge/catalog/internal/index"
	"github.com/studyforge/catalog/internal/registry"
	"github.com/studyforge/catalog/internal/schema"
	"github.com/studyforge/catalog/pkg/types"
)

// Snapshot assembles the exported artifact from a frozen registry and its
// derived index. Pure; writing is a separate step so I/O failures cannot
// leave a half-built value behind.
func Snapshot(reg *registry.Registry, idx *index.Index, buildID string, builtAt time.Time) *types.CatalogSnapshot {
	return &types.CatalogSnapshot{
		FormatVersion: types.FormatVersion,
		BuildID:       buildID,
		BuiltAt:       builtAt.UTC(),
		Topics:        reg.All(),
		Index:         idx.Snapshot(),
	}
}

// WriteJSON writes the snapshot to path atomically using a temp file,
// fsync, and rename, so a failed build never leaves a truncated snapshot
// where a previous good one stood.
func WriteJSON(snap *types.CatalogSnapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return writeAtomic(path, append(data, '\n'))
}

// ReadJSON reads a snapshot previously written by WriteJSON. It returns
// ErrFormatVersion when the artifact was produced by an incompatible
// format version, and ErrSnapshotInvalid when any imported topic fails
// schema re-validation.
func ReadJSON(path string) (*types.CatalogSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var snap types.CatalogSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if snap.FormatVersion != types.FormatVersion {
		return nil, fmt.Errorf("%s declares version %d: %w",
			path, snap.FormatVersion, types.ErrFormatVersion)
	}
	for _, topic := range snap.Topics {
		if errs := schema.ValidateTopic(topic); len(errs) > 0 {
			return nil, fmt.Errorf("%s topic %q %s: %w",
				path, topic.ID, errs[0].Error(), types.ErrSnapshotInvalid)
		}
	}
	return &snap, nil
}

// writeAtomic writes data to path via the temp-file, fsync, rename
// pattern.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}
