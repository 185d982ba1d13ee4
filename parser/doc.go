// Package parser provides LaTeX document parsing for texmigrate.
//
// The parser scans a LaTeX source file for sectioning commands (\chapter through
// \paragraph) and builds an ordered tree of section nodes. Each node owns the body
// text strictly between its heading and the next heading of any level; deeper
// headings become children via standard outline-stack construction, so level skips
// (a chapter directly followed by a subsubsection) are handled naturally.
//
// Section bodies are treated as opaque text blocks: the parser does not interpret
// any LaTeX markup beyond section boundaries and the \end{document} closing marker.
//
// Parsing is best-effort. Malformed sectioning commands (missing or unterminated
// brace argument) are recorded as warnings and the offending line is kept as body
// text; they are never fatal.
//
// The package also serializes a (possibly mutated) Document back to LaTeX source.
// Serializing an unmutated parse result reproduces the input byte-for-byte, modulo
// whitespace normalization inside heading lines.
package parser
