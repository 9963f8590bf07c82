package types

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrDuplicateID is returned when a topic's id is already registered.
	// Re-registering the same id is always an error, even with an
	// identical payload; silent overwrite would hide authoring mistakes.
	ErrDuplicateID = errors.New("duplicate topic id")

	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")
)

// Snapshot errors.
var (
	// ErrFormatVersion is returned when a snapshot's format_version does
	// not match the version this build understands.
	ErrFormatVersion = errors.New("unsupported snapshot format version")

	// ErrSnapshotInvalid is returned when an imported snapshot carries
	// topics that no longer satisfy the schema. Snapshots are trusted
	// artifacts only as long as they validate; a hand-edited or corrupted
	// file must not flow into downstream consumers.
	ErrSnapshotInvalid = errors.New("snapshot contains invalid topics")
)

// ValidationError describes one structural defect in a candidate topic
// record. A validate pass collects every defect in the record, so a single
// run gives authors the complete list.
type ValidationError struct {
	// Path locates the defective field, e.g. "title" or "resources[2].url".
	Path string `json:"path"`
	// Reason is a human-readable description of the defect.
	Reason string `json:"reason"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
