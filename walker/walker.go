package walker

import (
	"github.com/erraggy/texmigrate/parser"
)

// Action controls traversal from a visit function.
type Action int

const (
	// Continue proceeds with the traversal.
	Continue Action = iota
	// SkipChildren continues the traversal but does not descend into the
	// current node's children.
	SkipChildren
	// Stop terminates the traversal immediately.
	Stop
)

// VisitFunc is called for every node during a walk. depth is 1 for top-level
// sections and increases by one per nesting level.
type VisitFunc func(node *parser.SectionNode, depth int) Action

// Walk traverses the document's section tree in pre-order.
func Walk(doc *parser.Document, visit VisitFunc) {
	if doc == nil {
		return
	}
	walkNodes(doc.Sections, 1, visit)
}

// WalkNode traverses the subtree rooted at node in pre-order, including node itself.
func WalkNode(node *parser.SectionNode, visit VisitFunc) {
	if node == nil {
		return
	}
	walkNodes([]*parser.SectionNode{node}, 1, visit)
}

func walkNodes(nodes []*parser.SectionNode, depth int, visit VisitFunc) Action {
	for _, n := range nodes {
		switch visit(n, depth) {
		case Stop:
			return Stop
		case SkipChildren:
			continue
		}
		if walkNodes(n.Children, depth+1, visit) == Stop {
			return Stop
		}
	}
	return Continue
}

// MatchFunc reports whether a node satisfies a lookup predicate.
type MatchFunc func(node *parser.SectionNode) bool

// Find returns the first node in document order whose title matches exactly,
// or nil when no node matches. Lookup is global: any depth qualifies.
func Find(doc *parser.Document, title string) *parser.SectionNode {
	return FindFunc(doc, func(n *parser.SectionNode) bool { return n.Title == title })
}

// FindFunc returns the first node in document order satisfying match, or nil.
func FindFunc(doc *parser.Document, match MatchFunc) *parser.SectionNode {
	var found *parser.SectionNode
	Walk(doc, func(n *parser.SectionNode, _ int) Action {
		if match(n) {
			found = n
			return Stop
		}
		return Continue
	})
	return found
}

// FindAll returns every node in document order whose title matches exactly.
func FindAll(doc *parser.Document, title string) []*parser.SectionNode {
	return FindAllFunc(doc, func(n *parser.SectionNode) bool { return n.Title == title })
}

// FindAllFunc returns every node in document order satisfying match.
func FindAllFunc(doc *parser.Document, match MatchFunc) []*parser.SectionNode {
	var found []*parser.SectionNode
	Walk(doc, func(n *parser.SectionNode, _ int) Action {
		if match(n) {
			found = append(found, n)
		}
		return Continue
	})
	return found
}

// Count returns the number of nodes in the document's section tree.
func Count(doc *parser.Document) int {
	count := 0
	Walk(doc, func(_ *parser.SectionNode, _ int) Action {
		count++
		return Continue
	})
	return count
}
