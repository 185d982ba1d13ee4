package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/texmigrate/internal/fileutil"
	"github.com/erraggy/texmigrate/migrator"
)

// CreateConfigFlags contains flags for the create-config command
type CreateConfigFlags struct {
	Output string
	Force  bool
}

// SetupCreateConfigFlags creates and configures a FlagSet for the create-config command.
func SetupCreateConfigFlags() (*flag.FlagSet, *CreateConfigFlags) {
	fs := flag.NewFlagSet("create-config", flag.ContinueOnError)
	flags := &CreateConfigFlags{}

	fs.StringVar(&flags.Output, "o", "migration_config.json", "config file path to create")
	fs.StringVar(&flags.Output, "output", "migration_config.json", "config file path to create")
	fs.BoolVar(&flags.Force, "force", false, "overwrite an existing config file")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: texmigrate create-config [flags]\n\n")
		Writef(output, "Write a starter migration config with example section mappings.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  texmigrate create-config\n")
		Writef(output, "  texmigrate create-config -o thesis-migration.json\n")
	}

	return fs, flags
}

// HandleCreateConfig executes the create-config command
func HandleCreateConfig(args []string) error {
	fs, flags := SetupCreateConfigFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("create-config command takes no positional arguments")
	}

	if _, err := os.Stat(flags.Output); err == nil && !flags.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", flags.Output)
	}
	if err := RejectSymlinkOutput(flags.Output); err != nil {
		return err
	}

	if err := os.WriteFile(flags.Output, migrator.ExampleConfigJSON(), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	Writef(os.Stderr, "Created example config: %s\n", flags.Output)
	Writef(os.Stderr, "Edit the section_mapping entries to match your templates before migrating.\n")
	return nil
}
