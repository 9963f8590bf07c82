// Package catalog carries project-level metadata for the catalog engine.
package catalog

// Version is the build-catalog release version.
const Version = "0.1.0"
