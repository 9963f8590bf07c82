// Package schema validates candidate topic records against the catalog
// schema. A validate pass is pure: it never mutates its input and collects
// every defect in the record, so one run reports the complete defect list.
package schema

import (
	"fmt"
	"strings"

	"github.com/studyforge/catalog/pkg/types"
)

// knownTopicKeys is the set of accepted top-level keys in a candidate
// record. Anything else is a validation error, which catches key typos
// like "keypoints" before they silently drop content.
var knownTopicKeys = map[string]bool{
	"id":           true,
	"title":        true,
	"subtitle":     true,
	"summary":      true,
	"explanation":  true,
	"category":     true,
	"keyPoints":    true,
	"codeExamples": true,
	"resources":    true,
	"questions":    true,
}

// Validate checks a loosely-typed candidate record against the topic
// schema and returns either a normalized Topic or the complete list of
// defects. Checks run in order: required-field presence, field-type
// conformance, non-emptiness, then nested record validation. Nested
// failures are collected, never short-circuited.
//
// Normalization trims surrounding whitespace on scalar text fields; the
// input map is never modified.
func Validate(candidate map[string]any) (*types.Topic, []types.ValidationError) {
	c := collector{}

	topic := &types.Topic{
		ID:          c.requiredString(candidate, "id"),
		Title:       c.requiredString(candidate, "title"),
		Subtitle:    c.requiredString(candidate, "subtitle"),
		Summary:     c.requiredString(candidate, "summary"),
		Explanation: c.requiredString(candidate, "explanation"),
	}

	topic.Category = c.category(candidate)
	topic.KeyPoints = c.keyPoints(candidate)
	topic.CodeExamples = c.codeExamples(candidate)
	topic.Resources = c.resources(candidate)
	topic.Questions = c.questions(candidate)

	for key := range candidate {
		if !knownTopicKeys[key] {
			c.add(key, "unknown field")
		}
	}

	if len(c.errs) > 0 {
		return nil, c.errs
	}
	return topic, nil
}

// collector accumulates validation errors across one validate pass.
type collector struct {
	errs []types.ValidationError
}

func (c *collector) add(path, format string, args ...any) {
	c.errs = append(c.errs, types.ValidationError{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	})
}

// requiredString extracts a required, non-empty string field. Missing,
// mistyped, and empty values each produce exactly one error for the field.
func (c *collector) requiredString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		c.add(key, "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(key, "expected string, got %T", v)
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		c.add(key, "must not be empty")
	}
	return s
}

// optionalString extracts an optional string field, trimmed. A present but
// mistyped value is an error.
func (c *collector) optionalString(m map[string]any, path, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(path, "expected string, got %T", v)
		return ""
	}
	return strings.TrimSpace(s)
}

// category extracts the category tag. The ingest loader has already
// injected the directory-derived tag by the time validation runs, so an
// absent key means the record has no derivable category and the record is
// rejected.
func (c *collector) category(m map[string]any) types.Category {
	v, ok := m["category"]
	if !ok {
		c.add("category", "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add("category", "expected string, got %T", v)
		return ""
	}
	cat := types.Category(strings.TrimSpace(s))
	if !types.IsValidCategory(cat) {
		c.add("category", "unknown category %q", s)
		return ""
	}
	return cat
}

// sequence extracts an optional sequence field as []any.
func (c *collector) sequence(m map[string]any, key string) []any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		c.add(key, "expected sequence, got %T", v)
		return nil
	}
	return seq
}

// keyPoints validates the ordered key-point list. The list may be empty,
// but each present entry must be a non-empty string.
func (c *collector) keyPoints(m map[string]any) []string {
	seq := c.sequence(m, "keyPoints")
	if seq == nil {
		return nil
	}
	out := make([]string, 0, len(seq))
	for i, v := range seq {
		path := fmt.Sprintf("keyPoints[%d]", i)
		s, ok := v.(string)
		if !ok {
			c.add(path, "expected string, got %T", v)
			out = append(out, "")
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			c.add(path, "must not be empty")
		}
		out = append(out, s)
	}
	return out
}

// record extracts one nested mapping out of a sequence element.
func (c *collector) record(v any, path string) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		c.add(path, "expected mapping, got %T", v)
		return nil
	}
	return m
}

// nestedRequired extracts a required, non-empty string from a nested record.
func (c *collector) nestedRequired(m map[string]any, path, key string) string {
	full := path + "." + key
	v, ok := m[key]
	if !ok {
		c.add(full, "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(full, "expected string, got %T", v)
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		c.add(full, "must not be empty")
	}
	return s
}

func (c *collector) codeExamples(m map[string]any) []types.CodeExample {
	seq := c.sequence(m, "codeExamples")
	if seq == nil {
		return nil
	}
	out := make([]types.CodeExample, 0, len(seq))
	for i, v := range seq {
		path := fmt.Sprintf("codeExamples[%d]", i)
		rec := c.record(v, path)
		if rec == nil {
			continue
		}
		out = append(out, types.CodeExample{
			Title:       c.nestedRequired(rec, path, "title"),
			Description: c.optionalString(rec, path+".description", "description"),
			Language:    c.nestedRequired(rec, path, "language"),
			Code:        c.nestedRequired(rec, path, "code"),
		})
	}
	return out
}

func (c *collector) resources(m map[string]any) []types.Resource {
	seq := c.sequence(m, "resources")
	if seq == nil {
		return nil
	}
	out := make([]types.Resource, 0, len(seq))
	for i, v := range seq {
		path := fmt.Sprintf("resources[%d]", i)
		rec := c.record(v, path)
		if rec == nil {
			continue
		}
		out = append(out, types.Resource{
			Title:       c.nestedRequired(rec, path, "title"),
			URL:         c.nestedRequired(rec, path, "url"),
			Type:        c.optionalString(rec, path+".type", "type"),
			Description: c.optionalString(rec, path+".description", "description"),
		})
	}
	return out
}

func (c *collector) questions(m map[string]any) []types.QAPair {
	seq := c.sequence(m, "questions")
	if seq == nil {
		return nil
	}
	out := make([]types.QAPair, 0, len(seq))
	for i, v := range seq {
		path := fmt.Sprintf("questions[%d]", i)
		rec := c.record(v, path)
		if rec == nil {
			continue
		}
		out = append(out, types.QAPair{
			Question: c.nestedRequired(rec, path, "question"),
			Answer:   c.nestedRequired(rec, path, "answer"),
		})
	}
	return out
}
