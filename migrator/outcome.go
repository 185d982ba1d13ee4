package migrator

import "fmt"

// Action classifies the result of one migration step
type Action string

const (
	// ActionMatched indicates content was transplanted into an existing section
	ActionMatched Action = "matched"
	// ActionNotFound indicates a mapping title was absent from one of the trees;
	// no content is lost, it is simply not transplanted
	ActionNotFound Action = "not_found"
	// ActionCreated indicates a new top-level section was synthesized
	ActionCreated Action = "created"
	// ActionAmbiguous indicates several sections shared the target title;
	// the first in document order received the content
	ActionAmbiguous Action = "ambiguous"
)

// Outcome records the result of a single mapping entry or content injection.
// The ordered outcome list is, besides the merged document, the migrator's
// only output.
type Outcome struct {
	// OldTitle is the source section title, or empty for injected content.
	OldTitle string `json:"old_title,omitempty" yaml:"old_title,omitempty"`
	// NewTitle is the target section title in the new template.
	NewTitle string `json:"new_title" yaml:"new_title"`
	// Action classifies what happened.
	Action Action `json:"action" yaml:"action"`
	// Detail is a human-readable explanation.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// String returns a one-line rendering suitable for logs and text reports.
func (o Outcome) String() string {
	from := o.OldTitle
	if from == "" {
		from = "(config content)"
	}
	if o.Detail != "" {
		return fmt.Sprintf("%-10s %s -> %s: %s", o.Action, from, o.NewTitle, o.Detail)
	}
	return fmt.Sprintf("%-10s %s -> %s", o.Action, from, o.NewTitle)
}
