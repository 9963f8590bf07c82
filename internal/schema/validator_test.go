package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/catalog/pkg/types"
)

// validCandidate returns a fully-populated candidate record. Tests mutate
// a fresh copy to inject defects.
func validCandidate() map[string]any {
	return map[string]any{
		"id":          "acid-properties",
		"title":       "ACID Properties",
		"subtitle":    "The four transaction guarantees",
		"summary":     "What atomicity, consistency, isolation, and durability mean.",
		"explanation": "Transactions bundle operations so they commit or roll back as one unit.",
		"category":    "transactions",
		"keyPoints":   []any{"Atomicity is all-or-nothing", "Durability survives crashes"},
		"codeExamples": []any{
			map[string]any{
				"title":    "Transfer with rollback",
				"language": "sql",
				"code":     "BEGIN; UPDATE accounts SET balance = balance - 100 WHERE id = 1; COMMIT;",
			},
		},
		"resources": []any{
			map[string]any{
				"title": "PostgreSQL transaction docs",
				"url":   "https://www.postgresql.org/docs/current/tutorial-transactions.html",
				"type":  "documentation",
			},
		},
		"questions": []any{
			map[string]any{
				"question": "What does atomicity guarantee?",
				"answer":   "Either every operation in the transaction applies or none do.",
			},
		},
	}
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	topic, errs := Validate(validCandidate())

	require.Empty(t, errs)
	require.NotNil(t, topic)
	assert.Equal(t, "acid-properties", topic.ID)
	assert.Equal(t, types.CategoryTransactions, topic.Category)
	assert.Len(t, topic.KeyPoints, 2)
	assert.Len(t, topic.CodeExamples, 1)
	assert.Len(t, topic.Resources, 1)
	assert.Len(t, topic.Questions, 1)
}

func TestValidateMissingTitle(t *testing.T) {
	cand := validCandidate()
	delete(cand, "title")

	topic, errs := Validate(cand)

	assert.Nil(t, topic)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Path)
	assert.Equal(t, "required field is missing", errs[0].Reason)
}

func TestValidateFieldDefects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]any)
		wantPath string
	}{
		{
			name:     "empty id",
			mutate:   func(m map[string]any) { m["id"] = "  " },
			wantPath: "id",
		},
		{
			name:     "mistyped title",
			mutate:   func(m map[string]any) { m["title"] = 42 },
			wantPath: "title",
		},
		{
			name:     "missing explanation",
			mutate:   func(m map[string]any) { delete(m, "explanation") },
			wantPath: "explanation",
		},
		{
			name:     "unknown category",
			mutate:   func(m map[string]any) { m["category"] = "miscellaneous" },
			wantPath: "category",
		},
		{
			name:     "mistyped keyPoints",
			mutate:   func(m map[string]any) { m["keyPoints"] = "not a sequence" },
			wantPath: "keyPoints",
		},
		{
			name:     "empty key point entry",
			mutate:   func(m map[string]any) { m["keyPoints"] = []any{"fine", ""} },
			wantPath: "keyPoints[1]",
		},
		{
			name: "code example missing language",
			mutate: func(m map[string]any) {
				m["codeExamples"] = []any{map[string]any{"title": "x", "code": "y"}}
			},
			wantPath: "codeExamples[0].language",
		},
		{
			name: "resource missing url",
			mutate: func(m map[string]any) {
				m["resources"] = []any{map[string]any{"title": "docs"}}
			},
			wantPath: "resources[0].url",
		},
		{
			name: "question with empty answer",
			mutate: func(m map[string]any) {
				m["questions"] = []any{map[string]any{"question": "why?", "answer": ""}}
			},
			wantPath: "questions[0].answer",
		},
		{
			name:     "unknown top-level key",
			mutate:   func(m map[string]any) { m["keypoints"] = []any{"typo"} },
			wantPath: "keypoints",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := validCandidate()
			tt.mutate(cand)

			topic, errs := Validate(cand)

			assert.Nil(t, topic)
			require.NotEmpty(t, errs)
			paths := make([]string, 0, len(errs))
			for _, e := range errs {
				paths = append(paths, e.Path)
			}
			assert.Contains(t, paths, tt.wantPath)
		})
	}
}

func TestValidateCollectsAllDefectsInOnePass(t *testing.T) {
	cand := validCandidate()
	delete(cand, "title")
	cand["summary"] = ""
	cand["resources"] = []any{
		map[string]any{"title": "docs"},                       // missing url
		map[string]any{"url": "https://example.com/a"},        // missing title
		map[string]any{"title": 7, "url": "https://b.example"}, // mistyped title
	}

	topic, errs := Validate(cand)

	assert.Nil(t, topic)
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "title")
	assert.Contains(t, paths, "summary")
	assert.Contains(t, paths, "resources[0].url")
	assert.Contains(t, paths, "resources[1].title")
	assert.Contains(t, paths, "resources[2].title")
	assert.Len(t, errs, 5, "every defect is collected, none short-circuits")
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	cand := validCandidate()
	cand["title"] = "  padded title  "

	topic, errs := Validate(cand)

	require.Empty(t, errs)
	assert.Equal(t, "padded title", topic.Title, "output is trimmed")
	assert.Equal(t, "  padded title  ", cand["title"], "input is untouched")
}

func TestValidateMissingCategoryRejected(t *testing.T) {
	// The ingest loader injects the directory-derived category before
	// validation, so an absent key means the record has no tag at all and
	// must not enter the registry with an empty category.
	cand := validCandidate()
	delete(cand, "category")

	topic, errs := Validate(cand)

	assert.Nil(t, topic)
	require.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Path)
	assert.Equal(t, "required field is missing", errs[0].Reason)
}

func TestValidateTopic(t *testing.T) {
	tests := []struct {
		name     string
		topic    types.Topic
		wantPath string
	}{
		{
			name: "valid topic passes",
			topic: types.Topic{
				ID: "a", Title: "b", Subtitle: "c", Summary: "d",
				Explanation: "e", Category: types.CategoryFundamentals,
			},
		},
		{
			name: "missing title reported by json name",
			topic: types.Topic{
				ID: "a", Subtitle: "c", Summary: "d",
				Explanation: "e", Category: types.CategoryFundamentals,
			},
			wantPath: "title",
		},
		{
			name: "bad category reported",
			topic: types.Topic{
				ID: "a", Title: "b", Subtitle: "c", Summary: "d",
				Explanation: "e", Category: "misc",
			},
			wantPath: "category",
		},
		{
			name: "nested resource url reported with index",
			topic: types.Topic{
				ID: "a", Title: "b", Subtitle: "c", Summary: "d",
				Explanation: "e", Category: types.CategoryFundamentals,
				Resources: []types.Resource{{Title: "docs"}},
			},
			wantPath: "resources[0].url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTopic(&tt.topic)

			if tt.wantPath == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			paths := make([]string, 0, len(errs))
			for _, e := range errs {
				paths = append(paths, e.Path)
			}
			assert.Contains(t, paths, tt.wantPath)
		})
	}
}
