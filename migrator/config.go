package migrator

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/texmigrate/internal/stringutil"
)

// MigrationMode defines how mapped sections are transplanted
type MigrationMode string

const (
	// ModeGranular transplants only a mapped section's own body text;
	// subsections are matched independently via their own mapping entries.
	ModeGranular MigrationMode = "granular"
	// ModeFullHierarchy transplants a mapped section's entire subtree
	// (body plus all descendants) as a single unit.
	ModeFullHierarchy MigrationMode = "full_hierarchy"
)

// ValidModes returns all valid migration mode strings
func ValidModes() []string {
	return []string{string(ModeGranular), string(ModeFullHierarchy)}
}

// IsValidMode checks if a mode string is valid
func IsValidMode(mode string) bool {
	switch MigrationMode(mode) {
	case ModeGranular, ModeFullHierarchy:
		return true
	default:
		return false
	}
}

// MappingEntry maps one old-template section title to a new-template title.
type MappingEntry struct {
	// Old is the normalized title of the section in the old template.
	Old string `json:"old" yaml:"old"`
	// New is the normalized title of the target section in the new template.
	New string `json:"new" yaml:"new"`
}

// NewSectionEntry supplies body content for a section by title. If the title
// exists in the new template its body is replaced; otherwise a new top-level
// section is created before the closing marker.
type NewSectionEntry struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Config configures a migration.
//
// SectionMapping and NewSections are ordered: entries are applied in the order
// they appear in the configuration file, and when two mapping entries target
// the same new section the one applied last wins.
type Config struct {
	// Mode is the migration strategy. Defaults to full_hierarchy.
	Mode MigrationMode
	// CaseFold enables Unicode case-insensitive title matching.
	// Matching is case-sensitive by default.
	CaseFold bool
	// SectionMapping maps old-template titles to new-template titles.
	SectionMapping []MappingEntry
	// NewSections supplies content for sections new to the target template.
	NewSections []NewSectionEntry
}

// DefaultConfig returns a configuration with default settings and no entries
func DefaultConfig() Config {
	return Config{Mode: ModeFullHierarchy}
}

// ConfigError describes a fatal problem with a migration configuration.
// Configuration errors abort before any tree mutation.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("migrator: invalid config: %s", e.Message)
	}
	return fmt.Sprintf("migrator: invalid config field %q: %s", e.Field, e.Message)
}

// LoadConfig reads a migration configuration from a JSON or YAML file.
// Key order in section_mapping and new_sections_content is preserved.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("migrator: failed to read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig parses a migration configuration from JSON or YAML bytes.
// JSON is handled as a YAML 1.2 subset, so both formats share one decoder and
// both preserve mapping order.
func ParseConfig(data []byte) (Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Config{}, fmt.Errorf("migrator: failed to parse config: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Config{}, &ConfigError{Message: "config file is empty"}
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return Config{}, &ConfigError{Message: "config root must be a mapping"}
	}

	cfg := DefaultConfig()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		val := mapping.Content[i+1]

		switch key {
		case "mapping_mode":
			var mode string
			if err := val.Decode(&mode); err != nil {
				return Config{}, &ConfigError{Field: key, Message: err.Error()}
			}
			if !IsValidMode(mode) {
				return Config{}, &ConfigError{
					Field:   key,
					Message: fmt.Sprintf("unknown mode %q: valid modes: %v", mode, ValidModes()),
				}
			}
			cfg.Mode = MigrationMode(mode)

		case "case_fold":
			if err := val.Decode(&cfg.CaseFold); err != nil {
				return Config{}, &ConfigError{Field: key, Message: err.Error()}
			}

		case "section_mapping":
			pairs, err := decodeOrderedPairs(key, val)
			if err != nil {
				return Config{}, err
			}
			for _, p := range pairs {
				cfg.SectionMapping = append(cfg.SectionMapping, MappingEntry{
					Old: stringutil.NormalizeTitle(p[0]),
					New: stringutil.NormalizeTitle(p[1]),
				})
			}

		case "new_sections_content":
			pairs, err := decodeOrderedPairs(key, val)
			if err != nil {
				return Config{}, err
			}
			for _, p := range pairs {
				cfg.NewSections = append(cfg.NewSections, NewSectionEntry{
					Title:   stringutil.NormalizeTitle(p[0]),
					Content: p[1],
				})
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeOrderedPairs decodes a YAML mapping node into key/value string pairs,
// preserving document order.
func decodeOrderedPairs(field string, node *yaml.Node) ([][2]string, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &ConfigError{Field: field, Message: "must be a mapping of strings to strings"}
	}
	pairs := make([][2]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		v := node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, &ConfigError{Field: field, Message: "must be a mapping of strings to strings"}
		}
		pairs = append(pairs, [2]string{k.Value, v.Value})
	}
	return pairs, nil
}

// ExampleConfigJSON returns a starter configuration file in JSON. The section
// names match a typical paper-template migration and are meant to be edited.
func ExampleConfigJSON() []byte {
	return []byte(`{
    "mapping_mode": "granular",
    "case_fold": false,
    "section_mapping": {
        "Introduction": "Introduction",
        "Related Work": "Background and Related Work",
        "Methodology": "Methods",
        "Experiments": "Experimental Setup",
        "Results": "Results and Discussion",
        "Conclusion": "Conclusions"
    },
    "new_sections_content": {
        "Acknowledgments": "The authors would like to thank...",
        "Data Availability": "The data used in this study is available upon request.",
        "Ethics Statement": "This research complies with all relevant ethical guidelines.",
        "Author Contributions": "All authors contributed to the writing and review of this manuscript."
    }
}
`)
}

// Validate checks that the configuration is usable. A config that maps nothing
// and creates nothing has no work to do and is rejected before any parsing.
func (c Config) Validate() error {
	if !IsValidMode(string(c.Mode)) {
		return &ConfigError{
			Field:   "mapping_mode",
			Message: fmt.Sprintf("unknown mode %q: valid modes: %v", c.Mode, ValidModes()),
		}
	}
	if len(c.SectionMapping) == 0 && len(c.NewSections) == 0 {
		return &ConfigError{Message: "section_mapping and new_sections_content are both empty"}
	}
	for _, e := range c.SectionMapping {
		if e.Old == "" || e.New == "" {
			return &ConfigError{Field: "section_mapping", Message: "titles cannot be empty"}
		}
	}
	for _, e := range c.NewSections {
		if e.Title == "" {
			return &ConfigError{Field: "new_sections_content", Message: "titles cannot be empty"}
		}
	}
	return nil
}
