package types

// Audit finding kinds.
const (
	// FindingBrokenURL marks a resource URL that fails basic URL-shape
	// validation (missing scheme or host). Hard finding.
	FindingBrokenURL = "broken-url-syntax"

	// FindingDuplicateURL marks a URL repeated within one topic's
	// resources. Soft finding.
	FindingDuplicateURL = "duplicate-resource-url"

	// FindingUnknownLanguage marks a code example whose language tag is
	// outside the tracked set. Soft finding.
	FindingUnknownLanguage = "unknown-language-tag"

	// FindingUnreachableURL marks a resource URL that timed out or failed
	// a live reachability check. Soft finding; only produced when live
	// checks are enabled.
	FindingUnreachableURL = "unreachable-url"
)

// Finding is one quality issue detected in catalog content. Findings never
// block ingestion; they are surfaced in the AuditReport and optionally
// promoted to build-blocking under strict mode.
type Finding struct {
	Kind    string `json:"kind"`
	TopicID string `json:"topicId"`
	// Path locates the offending field within the topic,
	// e.g. "resources[1].url" or "codeExamples[0].language".
	Path   string `json:"path"`
	Detail string `json:"detail"`
}

// AuditReport groups the findings of one audit pass over a topic sequence.
// Running the auditor twice on the same input yields identical reports.
type AuditReport struct {
	BrokenURLSyntax      []Finding `json:"brokenUrlSyntax,omitempty"`
	DuplicateResourceURL []Finding `json:"duplicateResourceUrl,omitempty"`
	UnknownLanguageTag   []Finding `json:"unknownLanguageTag,omitempty"`
	UnreachableURL       []Finding `json:"unreachableUrl,omitempty"`
}

// Len returns the total number of findings in the report.
func (r *AuditReport) Len() int {
	return len(r.BrokenURLSyntax) + len(r.DuplicateResourceURL) +
		len(r.UnknownLanguageTag) + len(r.UnreachableURL)
}

// Empty reports whether the audit pass produced no findings.
func (r *AuditReport) Empty() bool {
	return r.Len() == 0
}

// All returns every finding in report order: hard findings first, then the
// soft groups.
func (r *AuditReport) All() []Finding {
	out := make([]Finding, 0, r.Len())
	out = append(out, r.BrokenURLSyntax...)
	out = append(out, r.DuplicateResourceURL...)
	out = append(out, r.UnknownLanguageTag...)
	out = append(out, r.UnreachableURL...)
	return out
}
