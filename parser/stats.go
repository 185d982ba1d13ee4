package parser

// DocumentStats contains statistical information about a parsed document
type DocumentStats struct {
	SectionCount       int // Total number of headings at every level
	ChapterCount       int // Number of \chapter headings
	TopSectionCount    int // Number of \section headings
	SubsectionCount    int // Number of \subsection headings
	SubsubsectionCount int // Number of \subsubsection headings
	ParagraphCount     int // Number of \paragraph headings
	MaxDepth           int // Deepest nesting observed in the tree
	PreambleSize       int // Bytes before the first heading
	TrailingSize       int // Bytes after the closing marker
	HasClosing         bool
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}
	stats.HasClosing = doc.Closing != ""
	stats.PreambleSize = len(doc.Preamble)
	stats.TrailingSize = len(doc.Trailing)
	for _, s := range doc.Sections {
		countNode(s, 1, &stats)
	}
	return stats
}

func countNode(n *SectionNode, depth int, stats *DocumentStats) {
	stats.SectionCount++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	switch n.Level {
	case LevelChapter:
		stats.ChapterCount++
	case LevelSection:
		stats.TopSectionCount++
	case LevelSubsection:
		stats.SubsectionCount++
	case LevelSubsubsection:
		stats.SubsubsectionCount++
	case LevelParagraph:
		stats.ParagraphCount++
	}
	for _, c := range n.Children {
		countNode(c, depth+1, stats)
	}
}
