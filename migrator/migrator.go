package migrator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/texmigrate/internal/fileutil"
	"github.com/erraggy/texmigrate/parser"
)

// migratorLogger is used for warnings in migrator functions.
// Tests can replace this with a discard logger to suppress expected warnings.
var migratorLogger = slog.Default()

// Migrator transplants content between two parsed LaTeX templates.
//
// Concurrency: Migrator instances are not safe for concurrent use.
// Create separate Migrator instances for concurrent operations.
type Migrator struct {
	config Config
}

// New creates a new Migrator instance with the provided configuration
func New(config Config) *Migrator {
	return &Migrator{config: config}
}

// MigrateResult contains the merged document and migration metadata
type MigrateResult struct {
	// Document is the merged section tree. It is a fresh tree: neither input
	// document is mutated.
	Document *parser.Document
	// Output is the serialized merged document.
	Output []byte
	// Outcomes records every mapping entry and content injection in the order
	// it was applied.
	Outcomes []Outcome
	// Warnings contains non-fatal issues encountered during the merge.
	Warnings []string
	// Stats contains statistical information about the merged document.
	Stats parser.DocumentStats
}

// AddOutcome appends an outcome record and logs non-matched actions.
func (r *MigrateResult) AddOutcome(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Action {
	case ActionNotFound, ActionAmbiguous:
		migratorLogger.Warn("migrator: "+string(o.Action),
			"old_title", o.OldTitle, "new_title", o.NewTitle, "detail", o.Detail)
	}
}

// AddWarning appends a non-fatal warning.
func (r *MigrateResult) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Migrate merges content from the old template into a copy of the new one.
//
// The new tree is deep-copied before any mutation: mapping entries are applied
// in configuration order, then content injections, and the resulting tree is
// serialized. Missing sections and ambiguous targets are recorded as outcomes
// and never abort the migration; only an invalid configuration or missing
// input is an error, and it is returned before any work is done.
func (m *Migrator) Migrate(oldResult, newResult *parser.ParseResult) (*MigrateResult, error) {
	if err := m.config.Validate(); err != nil {
		return nil, err
	}
	if oldResult == nil || oldResult.Document == nil {
		return nil, fmt.Errorf("migrator: old template parse result is nil")
	}
	if newResult == nil || newResult.Document == nil {
		return nil, fmt.Errorf("migrator: new template parse result is nil")
	}

	result := &MigrateResult{}
	merged := newResult.Document.Copy()

	for _, entry := range m.config.SectionMapping {
		m.applyMapping(merged, oldResult.Document, entry, result)
	}
	for _, entry := range m.config.NewSections {
		m.applyNewSection(merged, oldResult.Document, entry, result)
	}

	if merged.Closing == "" {
		result.AddWarning("new template has no closing marker; none emitted")
	}

	result.Document = merged
	result.Output = merged.Serialize()
	result.Stats = parser.GetDocumentStats(merged)

	migratorLogger.Info("migration complete",
		"mode", string(m.config.Mode),
		"mappings", len(m.config.SectionMapping),
		"injections", len(m.config.NewSections),
		"outcomes", len(result.Outcomes),
		"warnings", len(result.Warnings))
	return result, nil
}

// WriteResult writes the merged document to a file.
func (m *Migrator) WriteResult(result *MigrateResult, outputPath string) error {
	if result == nil || result.Document == nil {
		return fmt.Errorf("migrator: nothing to write: result is nil")
	}
	if err := os.WriteFile(outputPath, result.Output, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("migrator: failed to write output file: %w", err)
	}
	return nil
}
