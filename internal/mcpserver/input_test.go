package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `\documentclass{article}
\begin{document}
\section{Introduction}
Intro body.
\subsection{Motivation}
Why we care.
\section{Results}
Numbers.
\end{document}
`

func TestDocInput_ResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.tex")
	require.NoError(t, os.WriteFile(path, []byte(testTemplate), 0600))

	result, err := docInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, 3, result.Stats.SectionCount)
}

func TestDocInput_ResolveContent(t *testing.T) {
	result, err := docInput{Content: testTemplate}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "inline.tex", result.SourcePath)
	assert.Equal(t, 3, result.Stats.SectionCount)
	assert.True(t, result.Stats.HasClosing)
}

func TestDocInput_ResolveNoneProvided(t *testing.T) {
	_, err := docInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")
}

func TestDocInput_ResolveBothProvided(t *testing.T) {
	_, err := docInput{File: "a.tex", Content: "x"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")
}

func TestDocInput_ResolveFileNotFound(t *testing.T) {
	_, err := docInput{File: filepath.Join(t.TempDir(), "missing.tex")}.resolve()
	assert.Error(t, err)
}

func TestDocInput_ResolveInlineSizeLimit(t *testing.T) {
	original := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	defer func() { cfg.MaxInlineSize = original }()

	_, err := docInput{Content: testTemplate}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
