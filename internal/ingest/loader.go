// Package ingest reads authored topic record files from the content
// directory and produces the candidate list fed to the schema validator.
//
// Topic files are YAML or JSON documents, one or several candidate records
// per file. Candidates are produced in lexical file-path order, then
// document order within a file; this is the observable authoring order the
// registry preserves.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/studyforge/catalog/pkg/types"
)

// Candidate is one untyped topic record together with its origin, used in
// build reports to point authors at the defective file.
type Candidate struct {
	// Path is the content-dir-relative file path.
	Path string
	// Doc is the zero-based document position within the file.
	Doc int
	// Fields is the loosely-typed record as authored.
	Fields map[string]any
}

// Loader reads candidate topic records from a content directory.
type Loader struct {
	fs  afero.Fs
	dir string
}

// New returns a Loader over the given filesystem and content directory.
// Tests pass an afero.NewMemMapFs; the CLI passes afero.NewOsFs.
func New(fsys afero.Fs, contentDir string) *Loader {
	return &Loader{fs: fsys, dir: contentDir}
}

// Load walks the content directory and returns every candidate record.
// Files without a .yaml, .yml, or .json extension are skipped. A file that
// fails to parse aborts the load; unparseable input means the author's
// intent is unknowable, unlike a schema defect which is collected.
//
// When a record does not declare a category, the first-level subdirectory
// name is injected as the category tag (files at the content root get
// none, and validation rejects the record downstream).
func (l *Loader) Load() ([]Candidate, error) {
	var candidates []Candidate

	err := afero.Walk(l.fs, l.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			return nil
		}

		rel, err := filepath.Rel(l.dir, path)
		if err != nil {
			return err
		}

		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}

		var records []map[string]any
		if ext == ".json" {
			records, err = parseJSON(data)
		} else {
			records, err = parseYAML(data)
		}
		if err != nil {
			return fmt.Errorf("parsing %s: %w", rel, err)
		}

		for i, rec := range records {
			injectCategory(rec, rel)
			candidates = append(candidates, Candidate{
				Path:   rel,
				Doc:    i,
				Fields: rec,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// parseYAML decodes every document in a YAML stream.
func parseYAML(data []byte) ([]map[string]any, error) {
	var records []map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if rec == nil {
			// Empty document separator.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseJSON accepts either one record object or an array of records.
func parseJSON(data []byte) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var records []map[string]any
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return []map[string]any{rec}, nil
}

// injectCategory derives a record's category from its first-level
// subdirectory when the record does not declare one. An authored category
// always wins over the directory; directory names outside the taxonomy are
// injected as-is and rejected by validation with a precise error.
func injectCategory(rec map[string]any, relPath string) {
	if _, declared := rec["category"]; declared {
		return
	}
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) < 2 {
		return
	}
	rec["category"] = parts[0]
}

// ValidCategoryDirs returns the taxonomy tags as directory names, used by
// the CLI to scaffold a new content directory.
func ValidCategoryDirs() []string {
	dirs := make([]string, 0, len(types.AllCategories))
	for _, c := range types.AllCategories {
		dirs = append(dirs, string(c))
	}
	return dirs
}
