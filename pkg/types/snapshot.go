package types

import "time"

// FormatVersion is the snapshot format this build reads and writes.
const FormatVersion = 1

// CatalogSnapshot is the exported, versioned artifact consumed by
// downstream presentation and search services. Aside from BuildID and
// BuiltAt, the same registry state always serializes to identical bytes.
type CatalogSnapshot struct {
	FormatVersion int           `json:"formatVersion"`
	BuildID       string        `json:"buildId"`
	BuiltAt       time.Time     `json:"builtAt"`
	Topics        []*Topic      `json:"topics"`
	Index         IndexSnapshot `json:"index"`
}

// IndexSnapshot is the serialized form of the content index: the category
// grouping plus the search token table.
type IndexSnapshot struct {
	// Categories lists category groups in first-appearance order; topic
	// ids within a group keep registry insertion order.
	Categories []CategoryGroup `json:"categories"`
	// Tokens is the search token table, sorted by token for deterministic
	// output. Topic ids within an entry keep registry insertion order.
	Tokens []TokenEntry `json:"tokens"`
}

// CategoryGroup maps one category tag to its topics.
type CategoryGroup struct {
	Category Category `json:"category"`
	TopicIDs []string `json:"topicIds"`
}

// TokenEntry maps one search token to the topics whose searchable text
// contains it.
type TokenEntry struct {
	Token    string   `json:"token"`
	TopicIDs []string `json:"topicIds"`
}
