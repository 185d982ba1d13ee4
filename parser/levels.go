package parser

// SectionLevel identifies a LaTeX sectioning command.
type SectionLevel string

const (
	// LevelChapter is the \chapter sectioning command (shallowest level).
	LevelChapter SectionLevel = "chapter"
	// LevelSection is the \section sectioning command.
	LevelSection SectionLevel = "section"
	// LevelSubsection is the \subsection sectioning command.
	LevelSubsection SectionLevel = "subsection"
	// LevelSubsubsection is the \subsubsection sectioning command.
	LevelSubsubsection SectionLevel = "subsubsection"
	// LevelParagraph is the \paragraph sectioning command (deepest level).
	LevelParagraph SectionLevel = "paragraph"
)

// Levels returns all known section levels ordered from shallowest to deepest.
func Levels() []SectionLevel {
	return []SectionLevel{LevelChapter, LevelSection, LevelSubsection, LevelSubsubsection, LevelParagraph}
}

// Rank returns the numeric nesting rank of the level. Lower rank means
// shallower in the hierarchy (chapter=0 .. paragraph=4). Unknown levels
// rank deeper than any known level so they never own children.
func (l SectionLevel) Rank() int {
	switch l {
	case LevelChapter:
		return 0
	case LevelSection:
		return 1
	case LevelSubsection:
		return 2
	case LevelSubsubsection:
		return 3
	case LevelParagraph:
		return 4
	default:
		return 999
	}
}

// IsValid reports whether the level is one of the known sectioning commands.
func (l SectionLevel) IsValid() bool {
	switch l {
	case LevelChapter, LevelSection, LevelSubsection, LevelSubsubsection, LevelParagraph:
		return true
	default:
		return false
	}
}

// String returns the LaTeX command name without the leading backslash.
func (l SectionLevel) String() string {
	return string(l)
}
