package migrator

import (
	"fmt"

	"github.com/erraggy/texmigrate/parser"
)

// applyMapping resolves one mapping entry against both trees and transplants
// content into the merged tree according to the configured mode.
func (m *Migrator) applyMapping(merged, oldDoc *parser.Document, entry MappingEntry, result *MigrateResult) {
	oldNode := m.findFirst(oldDoc, entry.Old)
	if oldNode == nil {
		result.AddOutcome(Outcome{
			OldTitle: entry.Old,
			NewTitle: entry.New,
			Action:   ActionNotFound,
			Detail:   "section not found in old template",
		})
		return
	}

	targets := m.findAll(merged, entry.New)
	if len(targets) == 0 {
		result.AddOutcome(Outcome{
			OldTitle: entry.Old,
			NewTitle: entry.New,
			Action:   ActionNotFound,
			Detail:   "target section not found in new template",
		})
		return
	}
	target := targets[0]

	if oldNode.Body == "" && m.config.Mode == ModeGranular {
		result.AddWarning("no content found for %q", entry.Old)
	}

	switch m.config.Mode {
	case ModeGranular:
		// Own body only; the target's children stay exactly as in the template.
		target.Body = oldNode.Body
	case ModeFullHierarchy:
		// Unit transplant: the old subtree replaces both the target's body and
		// its children. The target keeps its own heading.
		target.Body = oldNode.Body
		target.Children = nil
		for _, child := range oldNode.Children {
			target.Children = append(target.Children, child.Copy())
		}
	}

	if len(targets) > 1 {
		result.AddOutcome(Outcome{
			OldTitle: entry.Old,
			NewTitle: entry.New,
			Action:   ActionAmbiguous,
			Detail: fmt.Sprintf("%d sections share the target title; first in document order received the content",
				len(targets)),
		})
		return
	}
	result.AddOutcome(Outcome{
		OldTitle: entry.Old,
		NewTitle: entry.New,
		Action:   ActionMatched,
		Detail:   fmt.Sprintf("%s content transplanted", m.config.Mode),
	})
}

// applyNewSection injects configured content: an existing section's body is
// replaced; a missing section is synthesized at top level, positioned before
// the closing marker.
func (m *Migrator) applyNewSection(merged, oldDoc *parser.Document, entry NewSectionEntry, result *MigrateResult) {
	targets := m.findAll(merged, entry.Title)
	if len(targets) > 0 {
		targets[0].Body = entry.Content
		action := ActionMatched
		detail := "body replaced with configured content"
		if len(targets) > 1 {
			action = ActionAmbiguous
			detail = fmt.Sprintf("%d sections share the title; first in document order received the content", len(targets))
		}
		result.AddOutcome(Outcome{NewTitle: entry.Title, Action: action, Detail: detail})
		return
	}

	node := &parser.SectionNode{
		Level: m.newSectionLevel(oldDoc, entry.Title),
		Title: entry.Title,
		Body:  entry.Content,
	}
	merged.Sections = append(merged.Sections, node)
	result.AddOutcome(Outcome{
		NewTitle: entry.Title,
		Action:   ActionCreated,
		Detail:   fmt.Sprintf("created as \\%s before the closing marker", node.Level),
	})
}

// newSectionLevel picks the level for a synthesized section: the level the
// title has in the old template when present, otherwise \section.
func (m *Migrator) newSectionLevel(oldDoc *parser.Document, title string) parser.SectionLevel {
	if oldNode := m.findFirst(oldDoc, title); oldNode != nil {
		return oldNode.Level
	}
	return parser.LevelSection
}
