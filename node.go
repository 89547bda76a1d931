package lyxweaver

import "strings"

// Node is any member of a parsed LyX tree: a raw text line, a one-line
// command, a begin/end container, or a named document part. Every node
// renders itself back to the exact text the parser accepts.
type Node interface {
	Render() string
	isNode()
}

// Line is a raw text line carried through the tree untouched.
type Line string

func (l Line) Render() string { return string(l) }

func (Line) isNode() {}

// Object is a one-line command of the form `\tag` or `\tag attribute`.
type Object struct {
	Tag       string
	Attribute string // empty when the command has no argument
}

func NewObject(tag, attribute string) *Object {
	return &Object{Tag: tag, Attribute: attribute}
}

func (o *Object) Render() string {
	if o.Attribute != "" {
		return `\` + o.Tag + " " + o.Attribute
	}
	return `\` + o.Tag
}

func (*Object) isNode() {}

// Container is a `\begin_tag [attribute] ... \end_tag` block holding an
// ordered list of child nodes. Child order is document order and is
// preserved through parse, mutation and render.
type Container struct {
	Tag       string
	Attribute string
	Children  []Node
}

func NewContainer(tag, attribute string, children ...Node) *Container {
	return &Container{Tag: tag, Attribute: attribute, Children: children}
}

// Append adds a node to the end of the container's children.
func (c *Container) Append(n Node) {
	c.Children = append(c.Children, n)
}

// Text joins the rendered children with sep. For containers holding only
// raw lines this is the plain text content.
func (c *Container) Text(sep string) string {
	parts := make([]string, len(c.Children))
	for i, ch := range c.Children {
		parts[i] = ch.Render()
	}
	return strings.Join(parts, sep)
}

func (c *Container) Render() string {
	var b strings.Builder
	b.WriteString(`\begin_` + c.Tag)
	if c.Attribute != "" {
		b.WriteString(" " + c.Attribute)
	}
	for _, ch := range c.Children {
		b.WriteByte('\n')
		b.WriteString(ch.Render())
	}
	b.WriteString("\n\\end_" + c.Tag)
	return b.String()
}

func (*Container) isNode() {}

// Part is a named section of a document: a header layout (whose attribute
// is the section level and whose text is the title) followed by the
// section's content.
type Part struct {
	Header   *Container
	Children []Node
}

func NewPart(header *Container, children ...Node) *Part {
	return &Part{Header: header, Children: children}
}

// Tag returns the header container's tag.
func (p *Part) Tag() string { return p.Header.Tag }

// Attribute returns the header container's attribute, e.g. "Section".
func (p *Part) Attribute() string { return p.Header.Attribute }

// Name returns the section title: the raw text lines of the header joined
// and trimmed, skipping label insets and other non-text children.
func (p *Part) Name() string {
	var parts []string
	for _, ch := range p.Header.Children {
		if l, ok := ch.(Line); ok {
			parts = append(parts, string(l))
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func (p *Part) Append(n Node) {
	p.Children = append(p.Children, n)
}

func (p *Part) Render() string {
	parts := make([]string, 0, len(p.Children)+1)
	parts = append(parts, p.Header.Render())
	for _, ch := range p.Children {
		parts = append(parts, ch.Render())
	}
	return strings.Join(parts, "\n")
}

func (*Part) isNode() {}
