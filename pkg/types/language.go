package types

// knownLanguages is the tracked set of code-example language tags. The set
// is open-ended: an unknown tag is an audit warning, never a hard error.
// Deployments extend it via the auditor's ExtraLanguages option.
var knownLanguages = map[string]bool{
	"sql":        true,
	"go":         true,
	"java":       true,
	"python":     true,
	"javascript": true,
	"typescript": true,
	"c":          true,
	"cpp":        true,
	"csharp":     true,
	"rust":       true,
	"bash":       true,
	"text":       true,
	"json":       true,
	"yaml":       true,
	"xml":        true,
	"protobuf":   true,
}

// IsKnownLanguage reports whether tag is in the tracked language-tag set.
func IsKnownLanguage(tag string) bool {
	return knownLanguages[tag]
}

// KnownLanguages returns a copy of the tracked language-tag set.
func KnownLanguages() map[string]bool {
	out := make(map[string]bool, len(knownLanguages))
	for k := range knownLanguages {
		out[k] = true
	}
	return out
}
