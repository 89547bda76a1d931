package lyxweaver

import (
	"os"
	"strings"
)

// Document is the root of a parsed LyX tree. Content holds the top-level
// nodes in document order; every descendant is exclusively owned by the
// document, there is no sharing between documents.
type Document struct {
	Content []Node

	sectionLevels  []string
	latin1Fallback bool
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithSectionLevels overrides the layout attributes that Parts treats as
// section headers, outermost first. The default is Section, Subsection,
// Subsubsection.
func WithSectionLevels(levels ...string) Option {
	return func(d *Document) { d.sectionLevels = levels }
}

// WithLatin1Fallback controls whether ParseFile re-decodes files that are
// not valid UTF-8 as ISO 8859-1. Enabled by default; pre-unicode LyX files
// are latin-1.
func WithLatin1Fallback(enabled bool) Option {
	return func(d *Document) { d.latin1Fallback = enabled }
}

var defaultSectionLevels = []string{"Section", "Subsection", "Subsubsection"}

func newDocument(opts ...Option) *Document {
	d := &Document{
		sectionLevels:  defaultSectionLevels,
		latin1Fallback: true,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// ParseFile reads and parses a LyX document from disk.
func ParseFile(path string, opts ...Option) (*Document, error) {
	d := newDocument(opts...)
	input, err := readProjectFile(path, d.latin1Fallback)
	if err != nil {
		return nil, err
	}
	return parseInto(d, input)
}

// FindTag returns every node, at any depth, whose tag or attribute equals
// name, in document order. Layouts are usually queried by their attribute,
// e.g. FindTag("Section"). A query with no matches returns an empty slice,
// never an error. The tree is not mutated.
func (d *Document) FindTag(name string) []Node {
	var found []Node
	Walk(d.Content, func(n Node) bool {
		switch t := n.(type) {
		case *Object:
			if t.Tag == name || strings.TrimSpace(t.Attribute) == name {
				found = append(found, n)
			}
		case *Container:
			if t.Tag == name || strings.TrimSpace(t.Attribute) == name {
				found = append(found, n)
			}
		case *Part:
			if t.Tag() == name || strings.TrimSpace(t.Attribute()) == name {
				found = append(found, n)
			}
		}
		return true
	})
	return found
}

// Append adds a node to the end of the document content. There is no
// positional insert; generated fragments always go at the end.
func (d *Document) Append(n Node) {
	d.Content = append(d.Content, n)
}

// Render serializes the whole tree back to LyX text. For an unmodified
// well-formed document this reproduces the parsed input exactly.
func (d *Document) Render() string {
	parts := make([]string, len(d.Content))
	for i, n := range d.Content {
		parts[i] = n.Render()
	}
	return strings.Join(parts, "\n")
}

// ToFile writes the rendered document to path, overwriting any existing
// file. Write failures surface immediately as a WriteError; nothing is
// retried.
func (d *Document) ToFile(path string) error {
	if err := os.WriteFile(path, []byte(d.Render()), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
