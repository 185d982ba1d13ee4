package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicDoc = `\documentclass{article}
\begin{document}
\section{Introduction}
Intro text.
\subsection{Motivation}
Why we care.
\section{Methods}
\subsubsection{Deep Dive}
Skipped a level.
\end{document}
`

func TestParseBytes_BasicStructure(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(basicDoc))
	require.NoError(t, err)
	require.NotNil(t, result.Document)

	doc := result.Document
	assert.Equal(t, "\\documentclass{article}\n\\begin{document}\n", doc.Preamble)
	assert.Equal(t, `\end{document}`, doc.Closing)
	assert.Empty(t, doc.Trailing)
	require.Len(t, doc.Sections, 2)

	intro := doc.Sections[0]
	assert.Equal(t, LevelSection, intro.Level)
	assert.Equal(t, "Introduction", intro.Title)
	assert.Equal(t, "Intro text.\n", intro.Body)
	require.Len(t, intro.Children, 1)
	assert.Equal(t, "Motivation", intro.Children[0].Title)
	assert.Equal(t, LevelSubsection, intro.Children[0].Level)
	assert.Equal(t, "Why we care.\n", intro.Children[0].Body)

	methods := doc.Sections[1]
	assert.Equal(t, "Methods", methods.Title)
	assert.Empty(t, methods.Body, "consecutive headings yield an empty body")
	require.Len(t, methods.Children, 1, "level skips attach to the nearest shallower ancestor")
	assert.Equal(t, LevelSubsubsection, methods.Children[0].Level)
	assert.Equal(t, "Deep Dive", methods.Children[0].Title)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 4, result.Stats.SectionCount)
	assert.Equal(t, 2, result.Stats.MaxDepth)
	assert.True(t, result.Stats.HasClosing)
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte(basicDoc), 0o600))

	p := New()
	result, err := p.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, int64(len(basicDoc)), result.SourceSize)
	require.Len(t, result.Document.Sections, 2)
}

func TestParse_FileNotFound(t *testing.T) {
	p := New()
	_, err := p.Parse(filepath.Join(t.TempDir(), "missing.tex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser: failed to read")
}

func TestParseReader(t *testing.T) {
	p := New()
	result, err := p.ParseReader(strings.NewReader(basicDoc))
	require.NoError(t, err)
	assert.Equal(t, "parse-reader.tex", result.SourcePath)
	require.Len(t, result.Document.Sections, 2)
}

func TestParse_TitleNormalization(t *testing.T) {
	doc := "\\section{  Results   and\tDiscussion }\nBody.\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, result.Document.Sections, 1)
	assert.Equal(t, "Results and Discussion", result.Document.Sections[0].Title)
}

func TestParse_StarredHeadingAndSuffix(t *testing.T) {
	doc := "\\section*{Acknowledgments}\\label{sec:ack}\nThanks.\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, result.Document.Sections, 1)

	n := result.Document.Sections[0]
	assert.True(t, n.Starred)
	assert.Equal(t, "Acknowledgments", n.Title)
	assert.Equal(t, `\label{sec:ack}`, n.Suffix)
	assert.Equal(t, `\section*{Acknowledgments}\label{sec:ack}`, n.HeadingLine())
}

func TestParse_LevelStack(t *testing.T) {
	doc := strings.Join([]string{
		`\chapter{One}`,
		`\subsection{Deep}`,
		`\section{Mid}`,
		`\chapter{Two}`,
		"",
	}, "\n")

	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)

	sections := result.Document.Sections
	require.Len(t, sections, 2)
	one := sections[0]
	require.Len(t, one.Children, 2, "both deeper headings belong to chapter One")
	assert.Equal(t, "Deep", one.Children[0].Title)
	assert.Equal(t, "Mid", one.Children[1].Title)
	assert.Empty(t, sections[1].Children)
}

func TestParse_MalformedHeadings(t *testing.T) {
	tests := []struct {
		name         string
		doc          string
		wantWarnings int
		wantBody     string
	}{
		{
			name:         "missing argument",
			doc:          "\\section{Valid}\n\\subsection\nstill body\n",
			wantWarnings: 1,
			wantBody:     "\\subsection\nstill body\n",
		},
		{
			name:         "unterminated argument",
			doc:          "\\section{Valid}\n\\subsection{Broken\n",
			wantWarnings: 1,
			wantBody:     "\\subsection{Broken\n",
		},
		{
			name:         "empty title",
			doc:          "\\section{Valid}\n\\subsection{}\n",
			wantWarnings: 1,
			wantBody:     "\\subsection{}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			result, err := p.ParseBytes([]byte(tt.doc))
			require.NoError(t, err)
			require.Len(t, result.Document.Sections, 1, "malformed heading must never open a section")
			assert.Equal(t, tt.wantBody, result.Document.Sections[0].Body)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestParse_CommentedHeadingStaysBody(t *testing.T) {
	doc := "\\section{Real}\n% \\section{Commented Out}\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, result.Document.Sections, 1)
	assert.Equal(t, "% \\section{Commented Out}\n", result.Document.Sections[0].Body)
	assert.Empty(t, result.Warnings)
}

func TestParse_DuplicateClosingMarkers(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantBody string
		wantOut  string
	}{
		{
			name:     "adjacent markers",
			doc:      "\\section{A}\nbody\n\\end{document}\n\\end{document}\n",
			wantBody: "body\n",
			wantOut:  "\\section{A}\nbody\n\\end{document}\n",
		},
		{
			name:     "text between markers stays in the document",
			doc:      "\\section{A}\nbody\n\\end{document}\nmiddle text\n\\end{document}\n",
			wantBody: "body\nmiddle text\n",
			wantOut:  "\\section{A}\nbody\nmiddle text\n\\end{document}\n",
		},
		{
			name:     "text after the last marker remains trailing",
			doc:      "\\section{A}\nbody\n\\end{document}\nmiddle\n\\end{document}\nafter\n",
			wantBody: "body\nmiddle\n",
			wantOut:  "\\section{A}\nbody\nmiddle\n\\end{document}\nafter\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			result, err := p.ParseBytes([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, `\end{document}`, result.Document.Closing)
			require.Len(t, result.Document.Sections, 1)
			assert.Equal(t, tt.wantBody, result.Document.Sections[0].Body)
			require.Len(t, result.Warnings, 1)
			assert.Contains(t, result.Warnings[0], "duplicate closing marker")
			assert.Equal(t, tt.wantOut, string(result.Document.Serialize()))
		})
	}
}

func TestParse_DuplicateClosingMarkersNoSections(t *testing.T) {
	doc := "\\documentclass{article}\n\\end{document}\nstray\n\\end{document}\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, result.Document.Sections)
	assert.Equal(t, "\\documentclass{article}\nstray\n", result.Document.Preamble)
	assert.Empty(t, result.Document.Trailing)
}

func TestParse_SectionAfterClosingMarker(t *testing.T) {
	doc := "\\section{A}\nbody\n\\end{document}\n\\section{Late}\nlate body\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)

	sections := result.Document.Sections
	require.Len(t, sections, 2)
	assert.Equal(t, "Late", sections[1].Title)
	assert.Equal(t, "late body\n", sections[1].Body)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "after closing marker")

	// Serialization moves the late section before the single closing marker.
	out := string(result.Document.Serialize())
	assert.Equal(t, 1, strings.Count(out, `\end{document}`))
	assert.Less(t, strings.Index(out, `\section{Late}`), strings.Index(out, `\end{document}`))
}

func TestParse_TrailingTextAfterClosing(t *testing.T) {
	doc := "\\section{A}\nbody\n\\end{document}\n% trailing comment\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "% trailing comment\n", result.Document.Trailing)
}

func TestParse_NoClosingMarker(t *testing.T) {
	doc := "\\section{A}\nbody\n"
	p := New()
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, result.Document.Closing)
	assert.False(t, result.Stats.HasClosing)
}

func TestParse_EmptyDocument(t *testing.T) {
	p := New()
	result, err := p.ParseBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Document.Sections)
	assert.Empty(t, result.Document.Preamble)
	assert.Zero(t, result.Stats.SectionCount)
}

func TestDocumentCopy_IsDeep(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(basicDoc))
	require.NoError(t, err)

	original := result.Document
	clone := original.Copy()
	clone.Sections[0].Body = "mutated\n"
	clone.Sections[0].Children[0].Title = "Mutated"

	assert.Equal(t, "Intro text.\n", original.Sections[0].Body)
	assert.Equal(t, "Motivation", original.Sections[0].Children[0].Title)
}
