package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name string
		tag  Category
		want bool
	}{
		{name: "fundamentals is valid", tag: CategoryFundamentals, want: true},
		{name: "concurrency is valid", tag: CategoryConcurrency, want: true},
		{name: "unknown tag rejected", tag: Category("misc"), want: false},
		{name: "empty tag rejected", tag: Category(""), want: false},
		{name: "case sensitive", tag: Category("Security"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCategory(tt.tag))
		})
	}
}

func TestAllCategoriesAreValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, IsValidCategory(c), "taxonomy entry %q must validate", c)
	}
	assert.Len(t, AllCategories, len(validCategories))
}

func TestKnownLanguages(t *testing.T) {
	assert.True(t, IsKnownLanguage("sql"))
	assert.True(t, IsKnownLanguage("go"))
	assert.False(t, IsKnownLanguage("brainfuck"))
	assert.False(t, IsKnownLanguage(""))

	// KnownLanguages returns a copy; mutating it must not leak back.
	set := KnownLanguages()
	set["brainfuck"] = true
	assert.False(t, IsKnownLanguage("brainfuck"))
}
