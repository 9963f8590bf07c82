// Package pipeline orchestrates one catalog build: load candidate records,
// validate each one, register the survivors, derive the index, audit, and
// assemble the snapshot.
//
// The build fails together, not fast: every validation error and duplicate
// id across the whole content set is collected before the process reports
// failure, so authors see the complete set of problems in one run.
package pipeline

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/studyforge/catalog/internal/audit"
	"github.com/studyforge/catalog/internal/index"
	"github.com/studyforge/catalog/internal/ingest"
	"github.com/studyforge/catalog/internal/registry"
	"github.com/studyforge/catalog/internal/schema"
	"github.com/studyforge/catalog/pkg/types"
)

// ErrContentLoad marks a failure to read or parse the content directory.
// The CLI maps it to the user-error exit code rather than the system one.
var ErrContentLoad = errors.New("content load failed")

// Options configures one build run.
type Options struct {
	// Fs is the filesystem holding the content directory.
	Fs afero.Fs
	// ContentDir is the root of the authored topic files.
	ContentDir string
	// ExtraLanguages extends the tracked language-tag set.
	ExtraLanguages []string
	// CheckLinks enables live URL reachability checks.
	CheckLinks bool
	// LinkConcurrency caps in-flight reachability checks.
	LinkConcurrency int
	// LinkTimeout bounds each reachability check.
	LinkTimeout time.Duration
	// Log receives progress diagnostics. Required.
	Log *zap.SugaredLogger
	// Now supplies the build timestamp; defaults to time.Now.
	Now func() time.Time
	// BuildID overrides the generated snapshot build id (tests).
	BuildID string
}

// Result is the outcome of one build run.
type Result struct {
	Registry *registry.Registry
	Index    *index.Index
	Snapshot *types.CatalogSnapshot
	Report   *Report
}

// Run executes the build. It returns an error only when the content set
// cannot be loaded at all or the link check pass is cancelled; per-topic
// defects land in the Report instead.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log

	candidates, err := ingest.New(opts.Fs, opts.ContentDir).Load()
	if err != nil {
		return nil, errors.Join(ErrContentLoad, err)
	}
	log.Infow("loaded candidate records", "count", len(candidates), "dir", opts.ContentDir)

	report := &Report{CandidatesLoaded: len(candidates)}
	reg := registry.New()

	for _, cand := range candidates {
		topic, verrs := schema.Validate(cand.Fields)
		if len(verrs) > 0 {
			report.ValidationFailures = append(report.ValidationFailures, TopicFailure{
				Origin: origin(cand),
				ID:     candidateID(cand),
				Errors: verrs,
			})
			continue
		}
		if err := reg.Register(topic); err != nil {
			if errors.Is(err, types.ErrDuplicateID) {
				report.DuplicateIDs = append(report.DuplicateIDs, DuplicateID{
					Origin: origin(cand),
					ID:     topic.ID,
				})
				continue
			}
			return nil, err
		}
	}
	reg.Freeze()
	report.TopicsRegistered = reg.Len()
	log.Infow("registry frozen",
		"registered", reg.Len(),
		"rejected", len(report.ValidationFailures)+len(report.DuplicateIDs))

	idx := index.Build(reg.All())

	auditor := audit.New(audit.WithExtraLanguages(opts.ExtraLanguages))
	report.Audit = auditor.Run(reg.All())

	if opts.CheckLinks {
		checker := &audit.Checker{
			Concurrency: opts.LinkConcurrency,
			Timeout:     opts.LinkTimeout,
		}
		findings, err := checker.CheckLive(ctx, reg.All())
		if err != nil {
			return nil, err
		}
		report.Audit.UnreachableURL = findings
		log.Infow("link check complete", "unreachable", len(findings))
	}

	buildID := opts.BuildID
	if buildID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		buildID = id.String()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	snap := &types.CatalogSnapshot{
		FormatVersion: types.FormatVersion,
		BuildID:       buildID,
		BuiltAt:       now().UTC(),
		Topics:        reg.All(),
		Index:         idx.Snapshot(),
	}

	return &Result{
		Registry: reg,
		Index:    idx,
		Snapshot: snap,
		Report:   report,
	}, nil
}

// origin renders a candidate's file location for reports.
func origin(c ingest.Candidate) string {
	if c.Doc == 0 {
		return c.Path
	}
	return c.Path + "#" + strconv.Itoa(c.Doc)
}

// candidateID best-effort extracts the authored id for reports on records
// that failed validation.
func candidateID(c ingest.Candidate) string {
	if id, ok := c.Fields["id"].(string); ok {
		return id
	}
	return ""
}
