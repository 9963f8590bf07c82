package pipeline

import (
	"fmt"
	"io"

	"github.com/studyforge/catalog/pkg/types"
)

// TopicFailure is one candidate record rejected by the schema validator,
// with the complete defect list for that record.
type TopicFailure struct {
	// Origin is the content-relative file path, with a document position
	// suffix for multi-record files (e.g. "concurrency/locks.yaml#2").
	Origin string                  `json:"origin"`
	ID     string                  `json:"id,omitempty"`
	Errors []types.ValidationError `json:"errors"`
}

// DuplicateID is one candidate rejected because its id was already
// registered. The first registration wins; every later one is reported.
type DuplicateID struct {
	Origin string `json:"origin"`
	ID     string `json:"id"`
}

// Report aggregates everything a build run found wrong, plus the audit
// findings. It feeds both the grouped human summary and the --json output.
type Report struct {
	CandidatesLoaded   int                `json:"candidatesLoaded"`
	TopicsRegistered   int                `json:"topicsRegistered"`
	ValidationFailures []TopicFailure     `json:"validationFailures,omitempty"`
	DuplicateIDs       []DuplicateID      `json:"duplicateIds,omitempty"`
	Audit              *types.AuditReport `json:"audit,omitempty"`
}

// Blocking reports whether the build must fail. Validation errors and
// duplicate ids always block; audit findings block only under strict.
func (r *Report) Blocking(strict bool) bool {
	if len(r.ValidationFailures) > 0 || len(r.DuplicateIDs) > 0 {
		return true
	}
	return strict && r.Audit != nil && !r.Audit.Empty()
}

// WriteSummary prints the grouped human-readable summary and the final
// verdict. No finding is ever swallowed: every group that has entries is
// listed in full.
func (r *Report) WriteSummary(w io.Writer, strict bool) {
	fmt.Fprintf(w, "candidates: %d  registered: %d\n", r.CandidatesLoaded, r.TopicsRegistered)

	if len(r.ValidationFailures) > 0 {
		fmt.Fprintf(w, "\nvalidation errors (%d records):\n", len(r.ValidationFailures))
		for _, f := range r.ValidationFailures {
			label := f.Origin
			if f.ID != "" {
				label = fmt.Sprintf("%s (id %q)", f.Origin, f.ID)
			}
			fmt.Fprintf(w, "  %s:\n", label)
			for _, e := range f.Errors {
				fmt.Fprintf(w, "    %s: %s\n", e.Path, e.Reason)
			}
		}
	}

	if len(r.DuplicateIDs) > 0 {
		fmt.Fprintf(w, "\nduplicate ids (%d):\n", len(r.DuplicateIDs))
		for _, d := range r.DuplicateIDs {
			fmt.Fprintf(w, "  %s: id %q already registered\n", d.Origin, d.ID)
		}
	}

	if r.Audit != nil && !r.Audit.Empty() {
		fmt.Fprintf(w, "\naudit findings (%d):\n", r.Audit.Len())
		for _, f := range r.Audit.All() {
			fmt.Fprintf(w, "  [%s] %s %s: %s\n", f.Kind, f.TopicID, f.Path, f.Detail)
		}
	}

	if r.Blocking(strict) {
		fmt.Fprintln(w, "\nresult: FAIL")
	} else {
		fmt.Fprintln(w, "\nresult: PASS")
	}
}
