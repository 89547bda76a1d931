package lyxweaver

import "strings"

type lineKind int

const (
	lineText lineKind = iota
	lineBegin
	lineEnd
	lineObject
)

// classifyLine decides what a single input line is. Only lines whose first
// character is a backslash are commands; indented backslashes are plain text,
// matching how LyX itself writes files.
func classifyLine(line string) (kind lineKind, tag, attribute string) {
	if !strings.HasPrefix(line, `\`) {
		return lineText, "", ""
	}
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, `\begin_`):
		tag, attribute, _ = strings.Cut(strings.TrimPrefix(trimmed, `\begin_`), " ")
		if tag == "" {
			return lineText, "", ""
		}
		return lineBegin, tag, attribute
	case strings.HasPrefix(trimmed, `\end_`):
		if tag = strings.TrimPrefix(trimmed, `\end_`); tag == "" {
			return lineText, "", ""
		}
		return lineEnd, tag, ""
	default:
		tag, attribute, _ = strings.Cut(trimmed[1:], " ")
		return lineObject, tag, attribute
	}
}

// Parse builds a Document from the full text of a LyX document. It scans
// lines sequentially keeping an explicit stack of open containers; a
// `\begin_tag` pushes a frame, the matching `\end_tag` pops it. A closing
// tag that matches nothing, or frames still open at end of input, abort the
// parse with an UnmatchedTagError or UnterminatedTagError. The partial tree
// is not usable after a failed parse.
func Parse(input string, opts ...Option) (*Document, error) {
	return parseInto(newDocument(opts...), input)
}

func parseInto(d *Document, input string) (*Document, error) {
	lines := strings.Split(input, "\n")
	var stack []*Container

	attach := func(n Node) {
		if len(stack) == 0 {
			d.Content = append(d.Content, n)
		} else {
			stack[len(stack)-1].Append(n)
		}
	}

	for i, raw := range lines {
		kind, tag, attribute := classifyLine(raw)
		switch kind {
		case lineBegin:
			c := NewContainer(tag, attribute)
			attach(c)
			stack = append(stack, c)
		case lineEnd:
			if len(stack) == 0 {
				return nil, NewUnmatchedTagError(Position{Line: i + 1}, tag, "", input)
			}
			top := stack[len(stack)-1]
			if top.Tag != tag {
				return nil, NewUnmatchedTagError(Position{Line: i + 1}, tag, top.Tag, input)
			}
			stack = stack[:len(stack)-1]
		case lineObject:
			attach(NewObject(tag, attribute))
		default:
			attach(Line(raw))
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, NewUnterminatedTagError(Position{Line: len(lines)}, top.Tag, len(stack), input)
	}
	return d, nil
}
