package parser

import "fmt"

// SectionNode represents one heading unit: a sectioning command, the body text
// that follows it, and any deeper headings nested beneath it.
//
// Body holds the raw text strictly between this node's heading line and the next
// heading line of any level (or the closing marker / end of document). Newlines
// are preserved exactly as read. Content belonging to deeper headings lives in
// Children, never in Body.
type SectionNode struct {
	// Level is the sectioning command that introduced this node.
	Level SectionLevel
	// Starred is true for unnumbered variants such as \section*{...}.
	Starred bool
	// Title is the whitespace-normalized heading text. It is the matching key
	// used by the migrator; comparison is case-sensitive exact-string.
	Title string
	// Suffix is any text that followed the closing brace on the heading line
	// (commonly a \label command). It is re-emitted verbatim on serialization.
	Suffix string
	// Body is the node's own body text (excluding descendant bodies).
	Body string
	// Children are the nested sections in document order. Every child's level
	// ranks strictly deeper than this node's level.
	Children []*SectionNode
}

// HeadingLine renders the node's heading as a LaTeX source line (without a
// trailing newline), e.g. `\subsection*{Prior Work}\label{sec:prior}`.
func (n *SectionNode) HeadingLine() string {
	star := ""
	if n.Starred {
		star = "*"
	}
	return fmt.Sprintf(`\%s%s{%s}%s`, n.Level, star, n.Title, n.Suffix)
}

// Copy returns a deep copy of the node and its entire subtree.
func (n *SectionNode) Copy() *SectionNode {
	if n == nil {
		return nil
	}
	c := &SectionNode{
		Level:   n.Level,
		Starred: n.Starred,
		Title:   n.Title,
		Suffix:  n.Suffix,
		Body:    n.Body,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*SectionNode, 0, len(n.Children))
		for _, child := range n.Children {
			c.Children = append(c.Children, child.Copy())
		}
	}
	return c
}

// Document is a parsed LaTeX document: leading preamble text, an ordered forest
// of top-level section nodes, and the closing-marker region.
type Document struct {
	// Preamble is the raw text before the first heading (newlines preserved).
	Preamble string
	// Sections are the top-level section nodes in document order.
	Sections []*SectionNode
	// Closing is the closing-document marker line (normally `\end{document}`),
	// or empty when the source had none. Exactly one marker is emitted on
	// serialization no matter how many the source contained.
	Closing string
	// Trailing is raw text that followed the closing marker without belonging
	// to any section. It is re-emitted after the marker.
	Trailing string
}

// Copy returns a deep copy of the document.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}
	c := &Document{
		Preamble: d.Preamble,
		Closing:  d.Closing,
		Trailing: d.Trailing,
	}
	if len(d.Sections) > 0 {
		c.Sections = make([]*SectionNode, 0, len(d.Sections))
		for _, s := range d.Sections {
			c.Sections = append(c.Sections, s.Copy())
		}
	}
	return c
}
