package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/texmigrate/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format string
	Quiet  bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the outline, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the outline, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: texmigrate parse [flags] <file|->\n\n")
		Writef(output, "Parse a LaTeX template and output its section hierarchy.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  texmigrate parse template.tex\n")
		Writef(output, "  texmigrate parse -f json template.tex\n")
		Writef(output, "  cat template.tex | texmigrate parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
	}

	return fs, flags
}

// SectionOutline is one node of a document outline as rendered by the parse
// command in structured output mode.
type SectionOutline struct {
	Level    string           `json:"level" yaml:"level"`
	Title    string           `json:"title" yaml:"title"`
	Starred  bool             `json:"starred,omitempty" yaml:"starred,omitempty"`
	BodySize int              `json:"body_size" yaml:"body_size"`
	Children []SectionOutline `json:"children,omitempty" yaml:"children,omitempty"`
}

// DocumentOutline is the structured output of the parse command.
type DocumentOutline struct {
	Source       string           `json:"source" yaml:"source"`
	SectionCount int              `json:"section_count" yaml:"section_count"`
	MaxDepth     int              `json:"max_depth" yaml:"max_depth"`
	HasClosing   bool             `json:"has_closing" yaml:"has_closing"`
	Sections     []SectionOutline `json:"sections" yaml:"sections"`
	Warnings     []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// BuildOutline converts a parse result into its outline form.
func BuildOutline(result *parser.ParseResult) DocumentOutline {
	outline := DocumentOutline{
		Source:       result.SourcePath,
		SectionCount: result.Stats.SectionCount,
		MaxDepth:     result.Stats.MaxDepth,
		HasClosing:   result.Stats.HasClosing,
		Warnings:     result.Warnings,
	}
	for _, s := range result.Document.Sections {
		outline.Sections = append(outline.Sections, buildSectionOutline(s))
	}
	return outline
}

func buildSectionOutline(n *parser.SectionNode) SectionOutline {
	so := SectionOutline{
		Level:    string(n.Level),
		Title:    n.Title,
		Starred:  n.Starred,
		BodySize: len(n.Body),
	}
	for _, child := range n.Children {
		so.Children = append(so.Children, buildSectionOutline(child))
	}
	return so
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	templatePath := fs.Arg(0)

	p := parser.New()

	var result *parser.ParseResult
	var err error
	if templatePath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		result, err = p.Parse(templatePath)
		if err != nil {
			return fmt.Errorf("parsing file: %w", err)
		}
	}

	// Diagnostics go to stderr to keep stdout clean for structured output
	if !flags.Quiet {
		Writef(os.Stderr, "LaTeX Template Parser\n")
		Writef(os.Stderr, "=====================\n\n")
		OutputTemplateHeader(templatePath)
		OutputTemplateStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "\n")
		OutputWarnings(result.Warnings)
	}

	outline := BuildOutline(result)
	if flags.Format == FormatText {
		printOutlineText(outline.Sections, 0)
		if !result.Stats.HasClosing {
			Writef(os.Stderr, "Note: document has no \\end{document} marker\n")
		}
		return nil
	}
	return OutputStructured(outline, flags.Format)
}

func printOutlineText(sections []SectionOutline, depth int) {
	for _, s := range sections {
		star := ""
		if s.Starred {
			star = "*"
		}
		Writef(os.Stdout, "%s\\%s%s{%s} (%d bytes)\n", strings.Repeat("  ", depth), s.Level, star, s.Title, s.BodySize)
		printOutlineText(s.Children, depth+1)
	}
}
