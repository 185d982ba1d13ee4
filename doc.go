// Package texmigrate provides tools for migrating content between versions of a
// LaTeX document template.
//
// texmigrate parses both templates into section trees, matches old sections to new
// ones using a user-supplied mapping, transplants content according to the configured
// migration mode, and serializes the merged tree back to LaTeX source.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Parse LaTeX documents into ordered section trees and serialize them back
//   - walker: Traverse and query parsed section trees
//   - migrator: Match sections across templates and merge content between them
//
// Two migration modes are supported:
//
//   - granular: each mapped section's own body text is transplanted independently;
//     subsections require their own mapping entries
//   - full_hierarchy: a mapped section's entire subtree (body, headings, and all
//     descendants) is transplanted as a single unit
//
// # Quick Start
//
// Parse a LaTeX document:
//
//	import "github.com/erraggy/texmigrate/parser"
//
//	p := parser.New()
//	result, err := p.Parse("thesis.tex")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Sections: %d\n", result.Stats.SectionCount)
//
// Migrate content between templates:
//
//	import "github.com/erraggy/texmigrate/migrator"
//
//	cfg, err := migrator.LoadConfig("migration.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	m := migrator.New(cfg)
//	result, err := m.Migrate(oldResult, newResult)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, outcome := range result.Outcomes {
//		fmt.Printf("%s -> %s: %s\n", outcome.OldTitle, outcome.NewTitle, outcome.Action)
//	}
//
// # Command-Line Interface
//
// In addition to the library packages, texmigrate provides a command-line interface:
//
//	# Migrate content from an old template into a new one
//	texmigrate migrate -config migration.json -old old.tex -new new.tex -output merged.tex
//
//	# Inspect the section outline of a document
//	texmigrate parse thesis.tex
//
//	# Write an example migration configuration
//	texmigrate create-config
//
// Install the CLI:
//
//	go install github.com/erraggy/texmigrate/cmd/texmigrate@latest
package texmigrate
