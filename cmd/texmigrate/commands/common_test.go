package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"xml", true},
		{"", true},
		{"JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarshalStructured(t *testing.T) {
	data := map[string]string{"title": "Introduction"}

	jsonBytes, err := MarshalStructured(data, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"title": "Introduction"`)

	yamlBytes, err := MarshalStructured(data, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(yamlBytes), "title: Introduction")

	_, err = MarshalStructured(data, FormatText)
	assert.Error(t, err)
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "old.tex")
	output := filepath.Join(dir, "merged.tex")

	assert.NoError(t, ValidateOutputPath(output, []string{input}))

	err := ValidateOutputPath(input, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()

	// Missing file is safe to write.
	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.tex")))

	// Regular file is fine.
	regular := filepath.Join(dir, "regular.tex")
	require.NoError(t, os.WriteFile(regular, []byte("x"), 0600))
	assert.NoError(t, RejectSymlinkOutput(regular))

	// Symlink is rejected.
	link := filepath.Join(dir, "link.tex")
	require.NoError(t, os.Symlink(regular, link))
	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestFormatTemplatePath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatTemplatePath(StdinFilePath))
	assert.Equal(t, "thesis.tex", FormatTemplatePath("thesis.tex"))
}
