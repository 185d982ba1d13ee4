package mcpserver

import (
	"context"

	"github.com/erraggy/texmigrate/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Doc  docInput `json:"doc"            jsonschema:"The LaTeX template to parse"`
	Full bool     `json:"full,omitempty" jsonschema:"Also return the serialized document"`
}

type sectionSummary struct {
	Level    string           `json:"level"`
	Title    string           `json:"title"`
	Starred  bool             `json:"starred,omitempty"`
	BodySize int              `json:"body_size"`
	Children []sectionSummary `json:"children,omitempty"`
}

type parseOutput struct {
	Source       string           `json:"source"`
	SectionCount int              `json:"section_count"`
	MaxDepth     int              `json:"max_depth"`
	HasClosing   bool             `json:"has_closing"`
	Sections     []sectionSummary `json:"sections,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	FullDocument string           `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Source:       result.SourcePath,
		SectionCount: result.Stats.SectionCount,
		MaxDepth:     result.Stats.MaxDepth,
		HasClosing:   result.Stats.HasClosing,
		Warnings:     result.Warnings,
	}
	for _, s := range result.Document.Sections {
		output.Sections = append(output.Sections, summarizeSection(s))
	}

	if input.Full {
		output.FullDocument = string(result.Document.Serialize())
	}

	return nil, output, nil
}

func summarizeSection(n *parser.SectionNode) sectionSummary {
	s := sectionSummary{
		Level:    string(n.Level),
		Title:    n.Title,
		Starred:  n.Starred,
		BodySize: len(n.Body),
	}
	for _, child := range n.Children {
		s.Children = append(s.Children, summarizeSection(child))
	}
	return s
}
