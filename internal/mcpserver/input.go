package mcpserver

import (
	"fmt"

	"github.com/erraggy/texmigrate/parser"
)

// docInput represents the two ways a LaTeX template can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a LaTeX template on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline LaTeX template content"`
}

// resolve parses the template from whichever input was provided.
func (d docInput) resolve() (*parser.ParseResult, error) {
	count := 0
	if d.File != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if d.Content != "" {
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set TEXMIGRATE_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		return parser.ParseWithOptions(
			parser.WithBytes([]byte(d.Content)),
			parser.WithSourceName("inline.tex"),
		)
	}
	return parser.ParseWithOptions(parser.WithFilePath(d.File))
}
