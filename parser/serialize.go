package parser

import "strings"

// Serialize renders the document back to LaTeX source in document order:
// preamble, then each section as heading line + body + children (pre-order),
// then exactly one closing marker followed by any trailing text.
//
// Serializing an unmutated parse result reproduces the input byte-for-byte,
// with two exceptions: whitespace inside heading lines is normalized, and a
// source that does not end in a newline gains one, since heading, body, and
// closing lines are always emitted newline-terminated.
func (d *Document) Serialize() []byte {
	var b strings.Builder
	b.WriteString(d.Preamble)
	for _, s := range d.Sections {
		writeNode(&b, s)
	}
	if d.Closing != "" {
		b.WriteString(d.Closing)
		b.WriteString("\n")
		b.WriteString(d.Trailing)
	}
	return []byte(b.String())
}

func writeNode(b *strings.Builder, n *SectionNode) {
	b.WriteString(n.HeadingLine())
	b.WriteString("\n")
	if n.Body != "" {
		b.WriteString(n.Body)
		// Bodies read from a document always end in a newline; bodies injected
		// from configuration may not, and the next heading needs its own line.
		if !strings.HasSuffix(n.Body, "\n") {
			b.WriteString("\n")
		}
	}
	for _, c := range n.Children {
		writeNode(b, c)
	}
}
