// Package types defines the catalog entities (Topic, CodeExample, Resource,
// QAPair), the category taxonomy and language-tag set, the snapshot format,
// and the standard error and report types shared across the catalog engine.
package types
