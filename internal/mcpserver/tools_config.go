package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/texmigrate/migrator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateConfigInput struct {
	Config     string `json:"config,omitempty"      jsonschema:"Inline migration config content (JSON or YAML)"`
	ConfigFile string `json:"config_file,omitempty" jsonschema:"Path to a migration config file on disk"`
}

type validateConfigOutput struct {
	Valid           bool   `json:"valid"`
	Mode            string `json:"mode,omitempty"`
	MappingCount    int    `json:"mapping_count"`
	NewSectionCount int    `json:"new_section_count"`
	Error           string `json:"error,omitempty"`
}

// loadToolConfig resolves a migration config from inline content or a file.
// Exactly one of config or config_file must be set.
func loadToolConfig(inline, file string) (migrator.Config, error) {
	if (inline == "") == (file == "") {
		return migrator.Config{}, fmt.Errorf("exactly one of config or config_file must be provided")
	}
	if file != "" {
		return migrator.LoadConfig(file)
	}
	if int64(len(inline)) > cfg.MaxInlineSize {
		return migrator.Config{}, fmt.Errorf("inline config size %d bytes exceeds maximum %d bytes", len(inline), cfg.MaxInlineSize)
	}
	return migrator.ParseConfig([]byte(inline))
}

func handleValidateConfig(_ context.Context, _ *mcp.CallToolRequest, input validateConfigInput) (*mcp.CallToolResult, validateConfigOutput, error) {
	// A missing file or unparseable input is an input error, not a
	// validation verdict.
	if input.ConfigFile != "" {
		if _, err := os.Stat(input.ConfigFile); err != nil {
			return errResult(err), validateConfigOutput{}, nil
		}
	}

	// loadToolConfig validates on parse, so any config it returns is usable.
	config, err := loadToolConfig(input.Config, input.ConfigFile)
	if err != nil {
		return nil, validateConfigOutput{Valid: false, Error: sanitizeError(err)}, nil
	}

	return nil, validateConfigOutput{
		Valid:           true,
		Mode:            string(config.Mode),
		MappingCount:    len(config.SectionMapping),
		NewSectionCount: len(config.NewSections),
	}, nil
}
