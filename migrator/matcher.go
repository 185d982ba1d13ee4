package migrator

import (
	"golang.org/x/text/cases"

	"github.com/erraggy/texmigrate/parser"
	"github.com/erraggy/texmigrate/walker"
)

// titleFolder performs Unicode case folding for case-insensitive matching.
var titleFolder = cases.Fold()

// matchKey returns the comparison key for a normalized title under the
// configured matching rules. Matching is exact-string and case-sensitive
// unless CaseFold is enabled.
func (m *Migrator) matchKey(title string) string {
	if m.config.CaseFold {
		return titleFolder.String(title)
	}
	return title
}

// findFirst returns the first node in document order whose title matches,
// or nil. Lookup is global across the entire tree: a subsection in one
// template may map to a top-level section in the other.
func (m *Migrator) findFirst(doc *parser.Document, title string) *parser.SectionNode {
	key := m.matchKey(title)
	return walker.FindFunc(doc, func(n *parser.SectionNode) bool {
		return m.matchKey(n.Title) == key
	})
}

// findAll returns every node in document order whose title matches. The
// caller uses the first as the resolution target; extras mean ambiguity.
func (m *Migrator) findAll(doc *parser.Document, title string) []*parser.SectionNode {
	key := m.matchKey(title)
	return walker.FindAllFunc(doc, func(n *parser.SectionNode) bool {
		return m.matchKey(n.Title) == key
	})
}
