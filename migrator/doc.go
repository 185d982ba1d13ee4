// Package migrator matches sections across two parsed LaTeX templates and
// merges content from the old template into the new one.
//
// A migration is driven by a Config: a mode, an ordered section mapping
// (old title -> new title), and ordered content for sections that are new in
// the target template. Two modes are supported:
//
//   - granular: only a mapped section's own body is transplanted; its
//     subsections are matched independently through their own mapping entries
//   - full_hierarchy: a mapped section's entire subtree (body plus all
//     descendants, headings included) replaces the target section's body and
//     children as a single unit
//
// Lookups are global: a mapping may move content to any depth of the new tree.
// When several new-tree sections share a mapped title, the first in document
// order wins and the ambiguity is recorded. Mapping entries are applied in
// configuration order, so when two entries target the same new section the
// last one wins.
//
// Migrate never mutates its inputs: it deep-copies the new tree, applies every
// resolution and injection to the copy, and serializes that. Besides the merged
// document, the only output is an ordered list of per-section outcomes
// (matched, not_found, created, ambiguous) suitable for a migration report.
//
// Concurrency: Migrator instances are not safe for concurrent use.
// Create separate Migrator instances for concurrent operations.
package migrator
