package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/erraggy/texmigrate/internal/stringutil"
)

// closingMarker is the closing-document marker. The parser excludes it from all
// section bodies and the serializer emits it exactly once.
const closingMarker = `\end{document}`

var (
	// headingRe matches a sectioning command that opens a heading line. The
	// command must be the first non-whitespace token on the line; commented-out
	// or mid-line commands stay in body text.
	headingRe = regexp.MustCompile(`^\s*\\(chapter|section|subsection|subsubsection|paragraph)(\*?)\{([^}]*)\}(.*)$`)

	// malformedHeadingRe catches sectioning commands with a missing or
	// unterminated brace argument so they can be reported as parse warnings.
	malformedHeadingRe = regexp.MustCompile(`^\s*\\(chapter|section|subsection|subsubsection|paragraph)\*?\s*(\{[^}]*)?$`)

	closingRe = regexp.MustCompile(`\\end\{document\}`)
)

// Parser parses LaTeX documents into section trees.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed LaTeX document and metadata.
//
// Callers should treat ParseResult as read-only after parsing: the migrator
// never mutates its inputs and other consumers should not either. Use
// Document.Copy for modification.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file path, this is the name of the parse method
	// ending in '.tex'.
	SourcePath string
	// Document is the parsed section tree.
	Document *Document
	// Warnings contains non-fatal issues such as malformed sectioning commands
	// or duplicate closing markers. Parsing never fails on document content.
	Warnings []string
	// Stats contains statistical information about the document.
	Stats DocumentStats
	// LoadTime is the time taken to load the source data.
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes.
	SourceSize int64
}

// Parse reads and parses a LaTeX document from a file path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read %s: %w", path, err)
	}
	loadTime := time.Since(start)

	result := p.parse(string(data))
	result.SourcePath = path
	result.LoadTime = loadTime
	result.SourceSize = int64(len(data))
	return result, nil
}

// ParseBytes parses a LaTeX document from a byte slice.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()
	result := p.parse(string(data))
	result.SourcePath = "parse-bytes.tex"
	result.LoadTime = time.Since(start)
	result.SourceSize = int64(len(data))
	return result, nil
}

// ParseReader parses a LaTeX document from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read input: %w", err)
	}
	result := p.parse(string(data))
	result.SourcePath = "parse-reader.tex"
	result.LoadTime = time.Since(start)
	result.SourceSize = int64(len(data))
	return result, nil
}

// sinkKind tracks where plain body lines accumulate during the scan.
type sinkKind int

const (
	sinkPreamble sinkKind = iota
	sinkBody
	sinkTrailing
)

// parse scans the document line by line and builds the section tree using an
// explicit outline stack of open ancestors. Heading levels may skip depths.
func (p *Parser) parse(content string) *ParseResult {
	logger := p.log()
	doc := &Document{}
	result := &ParseResult{Document: doc}

	var (
		buf     strings.Builder
		sink    = sinkPreamble
		stack   []*SectionNode
		current *SectionNode
		// lastBody is the section whose body was flowing when a closing
		// marker interrupted it. Text stranded between duplicate markers
		// folds back into it, so only the last marker stays closing.
		lastBody *SectionNode
	)

	flush := func() {
		switch sink {
		case sinkPreamble:
			doc.Preamble += buf.String()
		case sinkBody:
			if current != nil {
				current.Body += buf.String()
			}
		case sinkTrailing:
			doc.Trailing += buf.String()
		}
		buf.Reset()
	}

	for _, raw := range splitAfterLines(content) {
		line := strings.TrimRight(raw, "\r\n")

		if m := headingRe.FindStringSubmatch(line); m != nil {
			title := stringutil.NormalizeTitle(m[3])
			if title == "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("malformed heading with empty title kept as body text: %s", strings.TrimSpace(line)))
				buf.WriteString(raw)
				continue
			}

			flush()
			if sink == sinkTrailing {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("section %q found after closing marker; moved before it", title))
			}
			node := &SectionNode{
				Level:   SectionLevel(m[1]),
				Starred: m[2] == "*",
				Title:   title,
				Suffix:  m[4],
			}

			// Close all open sections at the same or deeper level.
			for len(stack) > 0 && stack[len(stack)-1].Level.Rank() >= node.Level.Rank() {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				doc.Sections = append(doc.Sections, node)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			current = node
			sink = sinkBody

			logger.Debug("found heading", "level", node.Level, "title", node.Title, "depth", len(stack))
			continue
		}

		if closingRe.MatchString(line) {
			flush()
			if doc.Closing == "" {
				doc.Closing = closingMarker
			} else {
				// The last marker wins. Text gathered after the earlier
				// marker belongs inside the document, not after it.
				if doc.Trailing != "" {
					if lastBody != nil {
						lastBody.Body += doc.Trailing
					} else {
						doc.Preamble += doc.Trailing
					}
					doc.Trailing = ""
				}
				result.Warnings = append(result.Warnings, "duplicate closing marker discarded")
			}
			if current != nil {
				lastBody = current
			}
			sink = sinkTrailing
			current = nil
			if trimmed := strings.TrimSpace(line); trimmed != closingMarker {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("extra text on closing marker line discarded: %s", trimmed))
			}
			continue
		}

		if malformedHeadingRe.MatchString(line) && strings.TrimSpace(line) != "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("malformed sectioning command kept as body text: %s", strings.TrimSpace(line)))
		}
		buf.WriteString(raw)
	}
	flush()

	result.Stats = GetDocumentStats(doc)
	logger.Info("parsed document",
		"sections", result.Stats.SectionCount,
		"max_depth", result.Stats.MaxDepth,
		"warnings", len(result.Warnings))
	return result
}

// splitAfterLines splits content into lines, each retaining its terminating
// newline (the final line may lack one). Empty content yields no lines.
func splitAfterLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
