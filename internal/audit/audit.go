// Package audit runs quality checks over the registered topics and
// produces a categorized report. The auditor is a read-only side channel:
// it never mutates the registry and never blocks ingestion, so content
// with cosmetic issues can still ship while being flagged.
package audit

import (
	"fmt"
	"net/url"

	"github.com/studyforge/catalog/pkg/types"
)

// Auditor checks topics for malformed resource URLs, duplicated URLs, and
// unknown code-example language tags.
type Auditor struct {
	languages map[string]bool
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithExtraLanguages extends the tracked language-tag set for this
// auditor, typically from the extra_languages config key.
func WithExtraLanguages(tags []string) Option {
	return func(a *Auditor) {
		for _, t := range tags {
			a.languages[t] = true
		}
	}
}

// New returns an Auditor using the tracked language-tag set plus any
// configured extras.
func New(opts ...Option) *Auditor {
	a := &Auditor{languages: types.KnownLanguages()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run audits the given topics and returns the findings report. The pass is
// pure and deterministic: the same input always yields an identical
// report.
func (a *Auditor) Run(topics []*types.Topic) *types.AuditReport {
	report := &types.AuditReport{}
	for _, t := range topics {
		a.auditResources(t, report)
		a.auditLanguages(t, report)
	}
	return report
}

func (a *Auditor) auditResources(t *types.Topic, report *types.AuditReport) {
	seen := make(map[string]int, len(t.Resources))
	for i, res := range t.Resources {
		path := fmt.Sprintf("resources[%d].url", i)
		if !ValidURL(res.URL) {
			report.BrokenURLSyntax = append(report.BrokenURLSyntax, types.Finding{
				Kind:    types.FindingBrokenURL,
				TopicID: t.ID,
				Path:    path,
				Detail:  fmt.Sprintf("%q is not a valid URL", res.URL),
			})
		}
		if first, dup := seen[res.URL]; dup {
			report.DuplicateResourceURL = append(report.DuplicateResourceURL, types.Finding{
				Kind:    types.FindingDuplicateURL,
				TopicID: t.ID,
				Path:    path,
				Detail:  fmt.Sprintf("%q already used by resources[%d]", res.URL, first),
			})
			continue
		}
		seen[res.URL] = i
	}
}

func (a *Auditor) auditLanguages(t *types.Topic, report *types.AuditReport) {
	for i, ex := range t.CodeExamples {
		if a.languages[ex.Language] {
			continue
		}
		report.UnknownLanguageTag = append(report.UnknownLanguageTag, types.Finding{
			Kind:    types.FindingUnknownLanguage,
			TopicID: t.ID,
			Path:    fmt.Sprintf("codeExamples[%d].language", i),
			Detail:  fmt.Sprintf("%q is not a tracked language tag", ex.Language),
		})
	}
}

// ValidURL reports whether raw parses as an absolute URL with both a
// scheme and a host.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
