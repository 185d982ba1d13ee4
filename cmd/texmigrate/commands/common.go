// Package commands provides CLI command handlers for texmigrate.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	texmigrate "github.com/erraggy/texmigrate"
	"github.com/erraggy/texmigrate/internal/cliutil"
	"github.com/erraggy/texmigrate/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	bytes, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	fmt.Println(string(bytes))
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatTemplatePath returns a display-friendly path for the template.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatTemplatePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// OutputTemplateHeader outputs the common template header to stderr.
// This includes texmigrate version and the template path.
func OutputTemplateHeader(path string) {
	Writef(os.Stderr, "texmigrate version: %s\n", texmigrate.Version())
	Writef(os.Stderr, "Template: %s\n", FormatTemplatePath(path))
}

// OutputTemplateStats outputs the common template statistics to stderr.
func OutputTemplateStats(sourceSize int64, stats parser.DocumentStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	Writef(os.Stderr, "Sections: %d\n", stats.SectionCount)
	Writef(os.Stderr, "Max Depth: %d\n", stats.MaxDepth)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}

// OutputWarnings outputs parse or migration warnings to stderr.
func OutputWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	Writef(os.Stderr, "Warnings (%d):\n", len(warnings))
	for _, warning := range warnings {
		Writef(os.Stderr, "  - %s\n", warning)
	}
	Writef(os.Stderr, "\n")
}
