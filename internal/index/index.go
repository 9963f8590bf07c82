// Package index builds lookup structures over the topic registry: a
// category grouping and a token-based search index. The index is batch
// built once per snapshot; there is no incremental update because the
// registry itself is immutable per snapshot.
package index

import (
	"sort"
	"strings"

	"github.com/studyforge/catalog/pkg/types"
)

// Relative match weights. Exact title beats any combination of weaker
// matches; a title substring beats any number of token hits, and a title
// token hit beats body token hits.
const (
	weightExactTitle  = 1 << 20
	weightTitleSubstr = 1 << 12
	weightTitleToken  = 1 << 4
	weightBodyToken   = 1
)

// Index provides category and keyword lookup over one registry snapshot.
type Index struct {
	topics     []*types.Topic
	byCategory map[types.Category][]*types.Topic
	catOrder   []types.Category
	entries    []entry
}

// entry holds the precomputed searchable text of one topic.
type entry struct {
	normTitle   string
	titleTokens map[string]bool
	bodyTokens  map[string]bool
}

// Build tokenizes each topic's searchable text (title, summary, keyPoints)
// in one pass over the registry and returns the derived index. Topic order
// in every lookup structure follows registry insertion order.
func Build(topics []*types.Topic) *Index {
	idx := &Index{
		topics:     topics,
		byCategory: make(map[types.Category][]*types.Topic),
		entries:    make([]entry, 0, len(topics)),
	}

	for _, t := range topics {
		if _, seen := idx.byCategory[t.Category]; !seen {
			idx.catOrder = append(idx.catOrder, t.Category)
		}
		idx.byCategory[t.Category] = append(idx.byCategory[t.Category], t)

		body := make(map[string]bool)
		for _, tok := range Tokenize(t.Summary) {
			body[tok] = true
		}
		for _, kp := range t.KeyPoints {
			for _, tok := range Tokenize(kp) {
				body[tok] = true
			}
		}
		idx.entries = append(idx.entries, entry{
			normTitle:   strings.ToLower(strings.TrimSpace(t.Title)),
			titleTokens: TokenSet(t.Title),
			bodyTokens:  body,
		})
	}
	return idx
}

// ByCategory returns the topics tagged with the given category, in
// registry insertion order. An unknown or unused tag yields an empty
// slice.
func (idx *Index) ByCategory(c types.Category) []*types.Topic {
	group := idx.byCategory[c]
	out := make([]*types.Topic, len(group))
	copy(out, group)
	return out
}

// Categories returns the category tags present in the registry, in
// first-appearance order.
func (idx *Index) Categories() []types.Category {
	out := make([]types.Category, len(idx.catOrder))
	copy(out, idx.catOrder)
	return out
}

// Search returns topics matching the query, ranked exact title match,
// then title substring match, then title token hits, then summary and
// keyPoint token hits. Ties keep registry insertion order. An empty or
// whitespace query returns the full registry in registry order.
func (idx *Index) Search(query string) []*types.Topic {
	norm := strings.ToLower(strings.TrimSpace(query))
	if norm == "" {
		out := make([]*types.Topic, len(idx.topics))
		copy(out, idx.topics)
		return out
	}
	qTokens := Tokenize(query)

	type scored struct {
		pos   int
		score int
	}
	var hits []scored
	for i, e := range idx.entries {
		score := 0
		switch {
		case e.normTitle == norm:
			score += weightExactTitle
		case strings.Contains(e.normTitle, norm):
			score += weightTitleSubstr
		}
		for _, tok := range qTokens {
			if e.titleTokens[tok] {
				score += weightTitleToken
			}
			if e.bodyTokens[tok] {
				score += weightBodyToken
			}
		}
		if score > 0 {
			hits = append(hits, scored{pos: i, score: score})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].score != hits[b].score {
			return hits[a].score > hits[b].score
		}
		return hits[a].pos < hits[b].pos
	})

	out := make([]*types.Topic, 0, len(hits))
	for _, h := range hits {
		out = append(out, idx.topics[h.pos])
	}
	return out
}

// Snapshot serializes the index into its exported form: category groups in
// first-appearance order and the token table sorted by token. Output is
// deterministic for a given registry state.
func (idx *Index) Snapshot() types.IndexSnapshot {
	snap := types.IndexSnapshot{}

	for _, c := range idx.catOrder {
		group := types.CategoryGroup{Category: c}
		for _, t := range idx.byCategory[c] {
			group.TopicIDs = append(group.TopicIDs, t.ID)
		}
		snap.Categories = append(snap.Categories, group)
	}

	// Token -> topic ids, preserving registry order within each entry.
	byToken := make(map[string][]string)
	for i, e := range idx.entries {
		id := idx.topics[i].ID
		seen := make(map[string]bool, len(e.titleTokens)+len(e.bodyTokens))
		for tok := range e.titleTokens {
			seen[tok] = true
		}
		for tok := range e.bodyTokens {
			seen[tok] = true
		}
		for tok := range seen {
			byToken[tok] = append(byToken[tok], id)
		}
	}

	tokens := make([]string, 0, len(byToken))
	for tok := range byToken {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	for _, tok := range tokens {
		snap.Tokens = append(snap.Tokens, types.TokenEntry{
			Token:    tok,
			TopicIDs: byToken[tok],
		})
	}
	return snap
}
