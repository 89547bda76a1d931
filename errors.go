package lyxweaver

import (
	"fmt"
	"strings"
)

// Position represents a position in the input text.
type Position struct {
	Line int // 1-based line number
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d", p.Line)
}

// ParseError is the base error type for all parsing errors.
type ParseError struct {
	Pos     Position // Position where the error occurred
	Message string   // Error message
	Context string   // Surrounding lines for context
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s at %s\nContext: %s", e.Message, e.Pos, e.Context)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// UnmatchedTagError reports a closing tag with no corresponding open frame,
// or one that closes a different tag than the innermost open one.
type UnmatchedTagError struct {
	ParseError
	TagName string // Name of the tag being closed
	Open    string // Tag of the innermost open frame, if any
}

// Error implements the error interface.
func (e *UnmatchedTagError) Error() string {
	if e.Open != "" {
		return fmt.Sprintf("closing tag \\end_%s at %s does not match open \\begin_%s\nContext: %s",
			e.TagName, e.Pos, e.Open, e.Context)
	}
	return fmt.Sprintf("closing tag \\end_%s at %s has no matching opening tag\nContext: %s",
		e.TagName, e.Pos, e.Context)
}

// UnterminatedTagError reports open frames left on the stack at end of input.
type UnterminatedTagError struct {
	ParseError
	TagName string // Tag of the innermost unterminated frame
	Depth   int    // Number of frames still open
}

// Error implements the error interface.
func (e *UnterminatedTagError) Error() string {
	return fmt.Sprintf("%d unterminated tag(s) at end of input, innermost \\begin_%s opened at %s\nContext: %s",
		e.Depth, e.TagName, e.Pos, e.Context)
}

// ReadError reports a failure to read a document file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to write a document file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// NewUnmatchedTagError creates a new UnmatchedTagError.
func NewUnmatchedTagError(pos Position, tagName, open, input string) *UnmatchedTagError {
	return &UnmatchedTagError{
		ParseError: ParseError{
			Pos:     pos,
			Message: "closing tag has no matching opening tag",
			Context: extractContext(input, pos),
		},
		TagName: tagName,
		Open:    open,
	}
}

// NewUnterminatedTagError creates a new UnterminatedTagError.
func NewUnterminatedTagError(pos Position, tagName string, depth int, input string) *UnterminatedTagError {
	return &UnterminatedTagError{
		ParseError: ParseError{
			Pos:     pos,
			Message: "unterminated opening tag at end of input",
			Context: extractContext(input, pos),
		},
		TagName: tagName,
		Depth:   depth,
	}
}

// extractContext extracts a snippet of text around the error position,
// a few lines before and after, with the error line highlighted.
func extractContext(input string, pos Position) string {
	if input == "" {
		return ""
	}

	lines := strings.Split(input, "\n")
	if pos.Line > len(lines) {
		return input // Fallback if position is out of range
	}

	startLine := max(0, pos.Line-3)
	endLine := min(len(lines)-1, pos.Line+1)

	var contextBuilder strings.Builder
	for i := startLine; i <= endLine; i++ {
		lineNum := i + 1
		if lineNum == pos.Line {
			contextBuilder.WriteString(fmt.Sprintf("-> %d: %s\n", lineNum, lines[i]))
		} else {
			contextBuilder.WriteString(fmt.Sprintf("   %d: %s\n", lineNum, lines[i]))
		}
	}

	return contextBuilder.String()
}
