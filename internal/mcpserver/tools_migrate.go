package mcpserver

import (
	"context"

	"github.com/erraggy/texmigrate/migrator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type migrateInput struct {
	Old        docInput `json:"old"                   jsonschema:"The old template containing the content to migrate"`
	New        docInput `json:"new"                   jsonschema:"The new template to merge content into"`
	Config     string   `json:"config,omitempty"      jsonschema:"Inline migration config content (JSON or YAML)"`
	ConfigFile string   `json:"config_file,omitempty" jsonschema:"Path to a migration config file on disk"`
	Output     string   `json:"output,omitempty"      jsonschema:"File path to write the merged document to; omit to return it inline"`
}

type migrateOutput struct {
	Mode           string             `json:"mode"`
	SectionCount   int                `json:"section_count"`
	Outcomes       []migrator.Outcome `json:"outcomes"`
	Warnings       []string           `json:"warnings,omitempty"`
	OutputPath     string             `json:"output_path,omitempty"`
	MergedDocument string             `json:"merged_document,omitempty"`
}

func handleMigrate(_ context.Context, _ *mcp.CallToolRequest, input migrateInput) (*mcp.CallToolResult, migrateOutput, error) {
	config, err := loadToolConfig(input.Config, input.ConfigFile)
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}

	oldResult, err := input.Old.resolve()
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}
	newResult, err := input.New.resolve()
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}

	m := migrator.New(config)
	result, err := m.Migrate(oldResult, newResult)
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}

	output := migrateOutput{
		Mode:         string(config.Mode),
		SectionCount: result.Stats.SectionCount,
		Outcomes:     result.Outcomes,
		Warnings:     result.Warnings,
	}

	if input.Output != "" {
		if err := m.WriteResult(result, input.Output); err != nil {
			return errResult(err), migrateOutput{}, nil
		}
		output.OutputPath = input.Output
	} else {
		output.MergedDocument = string(result.Output)
	}

	return nil, output, nil
}
