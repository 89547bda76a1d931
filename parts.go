package lyxweaver

import "strings"

// Parts groups the children of the document's body container into named
// parts keyed by the configured section levels. A layout whose attribute is
// a section level opens a Part; a layout at the same or an outer level
// closes it. Anything between a header and the next one becomes the part's
// content. Nodes before the first section header stay in the tree but are
// not part of any Part. Returns nil when the document has no body.
func (d *Document) Parts() []*Part {
	body := d.body()
	if body == nil {
		return nil
	}

	var parts []*Part
	var open []*Part
	for _, n := range body.Children {
		if c, ok := n.(*Container); ok {
			if lvl := d.sectionLevel(c.Attribute); lvl >= 0 {
				for len(open) > 0 && d.sectionLevel(open[len(open)-1].Attribute()) >= lvl {
					open = open[:len(open)-1]
				}
				p := NewPart(c)
				if len(open) == 0 {
					parts = append(parts, p)
				} else {
					open[len(open)-1].Append(p)
				}
				open = append(open, p)
				continue
			}
		}
		if len(open) > 0 {
			open[len(open)-1].Append(n)
		}
	}
	return parts
}

func (d *Document) body() *Container {
	for _, n := range d.FindTag("body") {
		if c, ok := n.(*Container); ok {
			return c
		}
	}
	return nil
}

// sectionLevel returns the depth of a layout attribute in the configured
// section hierarchy, or -1 when it is not a section level.
func (d *Document) sectionLevel(attribute string) int {
	attribute = strings.TrimSpace(attribute)
	for i, lvl := range d.sectionLevels {
		if lvl == attribute {
			return i
		}
	}
	return -1
}
