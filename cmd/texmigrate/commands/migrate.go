package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/texmigrate/internal/cliutil"
	"github.com/erraggy/texmigrate/internal/fileutil"
	"github.com/erraggy/texmigrate/migrator"
	"github.com/erraggy/texmigrate/parser"
)

// MigrateFlags contains flags for the migrate command
type MigrateFlags struct {
	Config       string
	Old          string
	New          string
	Output       string
	ReportPath   string
	ReportFormat string
	NoReport     bool
	NoBackup     bool
	Quiet        bool
}

// SetupMigrateFlags creates and configures a FlagSet for the migrate command.
// Returns the FlagSet and a MigrateFlags struct with bound flag variables.
func SetupMigrateFlags() (*flag.FlagSet, *MigrateFlags) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	flags := &MigrateFlags{}

	fs.StringVar(&flags.Config, "c", "", "migration config file (JSON or YAML) (required)")
	fs.StringVar(&flags.Config, "config", "", "migration config file (JSON or YAML) (required)")
	fs.StringVar(&flags.Old, "old", "", "old template containing the content to migrate (required)")
	fs.StringVar(&flags.New, "new", "", "new template to merge content into (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (required)")
	fs.StringVar(&flags.Output, "output", "", "output file path (required)")
	fs.StringVar(&flags.ReportPath, "report", "", "migration report path (default: migration_report.<ext> beside the output)")
	fs.StringVar(&flags.ReportFormat, "report-format", FormatText, "migration report format (text, json, yaml)")
	fs.BoolVar(&flags.NoReport, "no-report", false, "don't write a migration report")
	fs.BoolVar(&flags.NoBackup, "no-backup", false, "don't back up an existing output file before overwriting")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report errors")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: texmigrate migrate [flags]\n\n")
		Writef(output, "Migrate section content from an old LaTeX template into a new one.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  texmigrate migrate -c migration.json --old thesis-2019.tex --new thesis-2024.tex -o merged.tex\n")
		Writef(output, "  texmigrate migrate -c migration.yaml --old old.tex --new new.tex -o merged.tex --report-format json\n")
		Writef(output, "  texmigrate migrate -c migration.json --old old.tex --new new.tex -o merged.tex --no-backup --no-report\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Missing sections never abort the migration; they are recorded in the report\n")
		Writef(output, "  - An existing output file is backed up to <output>.backup.<timestamp> first\n")
		Writef(output, "  - Output files are written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// reportExtensions maps report formats to file extensions for the default report path.
var reportExtensions = map[string]string{
	FormatText: "txt",
	FormatJSON: "json",
	FormatYAML: "yaml",
}

// DefaultReportPath returns the report path used when none is given:
// migration_report.<ext> in the output file's directory.
func DefaultReportPath(outputPath, reportFormat string) string {
	return filepath.Join(filepath.Dir(outputPath), "migration_report."+reportExtensions[reportFormat])
}

// HandleMigrate executes the migrate command
func HandleMigrate(args []string) error {
	fs, flags := SetupMigrateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("migrate command takes no positional arguments")
	}
	if flags.Config == "" {
		fs.Usage()
		return fmt.Errorf("config file is required (use -c or --config)")
	}
	if flags.Old == "" || flags.New == "" {
		fs.Usage()
		return fmt.Errorf("both templates are required (use --old and --new)")
	}
	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output file is required (use -o or --output)")
	}
	if err := ValidateOutputFormat(flags.ReportFormat); err != nil {
		return err
	}

	config, err := migrator.LoadConfig(flags.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := ValidateOutputPath(flags.Output, []string{flags.Config, flags.Old, flags.New}); err != nil {
		return err
	}
	if err := RejectSymlinkOutput(filepath.Clean(flags.Output)); err != nil {
		return err
	}

	p := parser.New()
	oldResult, err := p.Parse(flags.Old)
	if err != nil {
		return fmt.Errorf("parsing old template: %w", err)
	}
	newResult, err := p.Parse(flags.New)
	if err != nil {
		return fmt.Errorf("parsing new template: %w", err)
	}

	startTime := time.Now()
	m := migrator.New(config)
	result, err := m.Migrate(oldResult, newResult)
	if err != nil {
		return fmt.Errorf("migrating templates: %w", err)
	}

	if !flags.NoBackup {
		backupPath, err := cliutil.BackupFile(flags.Output, time.Now())
		if err != nil {
			return err
		}
		if backupPath != "" && !flags.Quiet {
			Writef(os.Stderr, "Backed up existing output to: %s\n", backupPath)
		}
	}

	if err := m.WriteResult(result, flags.Output); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	totalTime := time.Since(startTime)

	report := m.BuildReport(oldResult, newResult, result)
	reportPath := flags.ReportPath
	if !flags.NoReport {
		if reportPath == "" {
			reportPath = DefaultReportPath(flags.Output, flags.ReportFormat)
		}
		if err := writeReport(report, reportPath, flags.ReportFormat); err != nil {
			return err
		}
	}

	if flags.Quiet {
		return nil
	}

	Writef(os.Stderr, "LaTeX Template Migrator\n")
	Writef(os.Stderr, "=======================\n\n")
	OutputTemplateHeader(flags.Old)
	Writef(os.Stderr, "Mode: %s\n", config.Mode)
	Writef(os.Stderr, "Output: %s\n", flags.Output)
	if !flags.NoReport {
		Writef(os.Stderr, "Report: %s\n", reportPath)
	}
	Writef(os.Stderr, "Sections: %d\n", result.Stats.SectionCount)
	Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	Writef(os.Stderr, "Outcomes: %d matched, %d created, %d not found, %d ambiguous\n",
		report.CountByAction(migrator.ActionMatched),
		report.CountByAction(migrator.ActionCreated),
		report.CountByAction(migrator.ActionNotFound),
		report.CountByAction(migrator.ActionAmbiguous))
	for _, o := range result.Outcomes {
		Writef(os.Stderr, "  %s\n", o.String())
	}
	Writef(os.Stderr, "\n")
	OutputWarnings(result.Warnings)

	Writef(os.Stderr, "Migration completed successfully!\n")
	return nil
}

// writeReport writes the migration report in the requested format.
func writeReport(report *migrator.Report, path, format string) error {
	var data []byte
	var err error
	if format == FormatText {
		data = report.RenderText()
	} else {
		data, err = MarshalStructured(report, format)
		if err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
