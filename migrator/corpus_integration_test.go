package migrator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/erraggy/texmigrate/parser"
)

// TestCorpusMigrations runs end-to-end migrations against txtar scenarios in
// testdata/corpus. Each archive holds a config (config.json or config.yaml),
// old.tex, new.tex, the expected merged output want.tex, and optionally
// want-actions: one "action|old_title|new_title" line per expected outcome.
func TestCorpusMigrations(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("..", "testdata", "corpus", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives, "corpus scenarios missing")

	for _, path := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			files := make(map[string][]byte, len(ar.Files))
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}

			configData := files["config.json"]
			if configData == nil {
				configData = files["config.yaml"]
			}
			require.NotNil(t, configData, "archive must contain config.json or config.yaml")
			require.NotNil(t, files["old.tex"])
			require.NotNil(t, files["new.tex"])
			require.NotNil(t, files["want.tex"])

			cfg, err := ParseConfig(configData)
			require.NoError(t, err)

			p := parser.New()
			oldResult, err := p.ParseBytes(files["old.tex"])
			require.NoError(t, err)
			newResult, err := p.ParseBytes(files["new.tex"])
			require.NoError(t, err)

			result, err := New(cfg).Migrate(oldResult, newResult)
			require.NoError(t, err)
			assert.Equal(t, string(files["want.tex"]), string(result.Output))

			if wantActions, ok := files["want-actions"]; ok {
				var want []Outcome
				for _, line := range strings.Split(strings.TrimSpace(string(wantActions)), "\n") {
					parts := strings.Split(line, "|")
					require.Len(t, parts, 3, "bad want-actions line: %s", line)
					want = append(want, Outcome{
						Action:   Action(parts[0]),
						OldTitle: parts[1],
						NewTitle: parts[2],
					})
				}
				require.Len(t, result.Outcomes, len(want))
				for i, o := range result.Outcomes {
					assert.Equal(t, want[i].Action, o.Action, "outcome %d", i)
					assert.Equal(t, want[i].OldTitle, o.OldTitle, "outcome %d", i)
					assert.Equal(t, want[i].NewTitle, o.NewTitle, "outcome %d", i)
				}
			}
		})
	}
}
