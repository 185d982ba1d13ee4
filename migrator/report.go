package migrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/erraggy/texmigrate/parser"
)

// Report summarizes a completed migration for human or machine consumption.
// The CLI writes it next to the output document; the JSON/YAML struct tags
// support structured output formats.
type Report struct {
	GeneratedAt    time.Time     `json:"generated_at" yaml:"generated_at"`
	Mode           MigrationMode `json:"mode" yaml:"mode"`
	OldSource      string        `json:"old_source" yaml:"old_source"`
	NewSource      string        `json:"new_source" yaml:"new_source"`
	OldSections    int           `json:"old_sections" yaml:"old_sections"`
	NewSections    int           `json:"new_sections" yaml:"new_sections"`
	MergedSections int           `json:"merged_sections" yaml:"merged_sections"`
	Outcomes       []Outcome     `json:"outcomes" yaml:"outcomes"`
	Warnings       []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// BuildReport assembles a migration report from the parse inputs and the
// migration result.
func (m *Migrator) BuildReport(oldResult, newResult *parser.ParseResult, result *MigrateResult) *Report {
	r := &Report{
		GeneratedAt: time.Now(),
		Mode:        m.config.Mode,
		Outcomes:    result.Outcomes,
		Warnings:    result.Warnings,
	}
	if oldResult != nil {
		r.OldSource = oldResult.SourcePath
		r.OldSections = oldResult.Stats.SectionCount
	}
	if newResult != nil {
		r.NewSource = newResult.SourcePath
		r.NewSections = newResult.Stats.SectionCount
	}
	r.MergedSections = result.Stats.SectionCount
	return r
}

const reportRule = "------------------------------------------------------------"

// RenderText renders the report in a plain-text table layout.
func (r *Report) RenderText() []byte {
	var b strings.Builder

	b.WriteString("LaTeX Template Migration Report\n")
	b.WriteString("============================================================\n")
	fmt.Fprintf(&b, "Date: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Mode: %s\n\n", r.Mode)

	fmt.Fprintf(&b, "Old template: %s (%d sections)\n", r.OldSource, r.OldSections)
	fmt.Fprintf(&b, "New template: %s (%d sections)\n", r.NewSource, r.NewSections)
	fmt.Fprintf(&b, "Merged document: %d sections\n\n", r.MergedSections)

	b.WriteString("Outcomes:\n")
	b.WriteString(reportRule + "\n")
	if len(r.Outcomes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "%s\n", o.String())
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		b.WriteString(reportRule + "\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return []byte(b.String())
}

// CountByAction returns how many outcomes carry the given action.
func (r *Report) CountByAction(action Action) int {
	count := 0
	for _, o := range r.Outcomes {
		if o.Action == action {
			count++
		}
	}
	return count
}
