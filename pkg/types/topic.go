package types

// Topic is one educational content unit, the catalog's primary entity.
// A Topic is authored once, validated once at ingestion, and is immutable
// within a given registry snapshot.
type Topic struct {
	ID           string        `json:"id" yaml:"id" validate:"required"`
	Title        string        `json:"title" yaml:"title" validate:"required"`
	Subtitle     string        `json:"subtitle" yaml:"subtitle" validate:"required"`
	Summary      string        `json:"summary" yaml:"summary" validate:"required"`
	Explanation  string        `json:"explanation" yaml:"explanation" validate:"required"`
	Category     Category      `json:"category" yaml:"category" validate:"required,category"`
	KeyPoints    []string      `json:"keyPoints,omitempty" yaml:"keyPoints,omitempty" validate:"dive,required"`
	CodeExamples []CodeExample `json:"codeExamples,omitempty" yaml:"codeExamples,omitempty" validate:"dive"`
	Resources    []Resource    `json:"resources,omitempty" yaml:"resources,omitempty" validate:"dive"`
	Questions    []QAPair      `json:"questions,omitempty" yaml:"questions,omitempty" validate:"dive"`
}

// CodeExample is an illustrative code snippet attached to a Topic.
// No execution semantics are implied.
type CodeExample struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Language    string `json:"language" yaml:"language" validate:"required"`
	Code        string `json:"code" yaml:"code" validate:"required"`
}

// Resource references external reading material for a Topic.
type Resource struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	URL         string `json:"url" yaml:"url" validate:"required"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Resource type values. The type field is optional and open-ended; these
// are the conventional values authors use.
const (
	ResourceArticle       = "article"
	ResourceVideo         = "video"
	ResourceDocumentation = "documentation"
	ResourceTool          = "tool"
)

// QAPair is one study question and its answer.
type QAPair struct {
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" validate:"required"`
}
