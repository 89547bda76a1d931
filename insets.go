package lyxweaver

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// The inset constructors are presets over the one Container shape: fixed
// tag and attribute, conventional body. Nothing here validates tag
// vocabulary; a mismatch only ever shows up when LyX reads the output.

var labelReplacements = map[string]string{
	"%":  "percent",
	"_":  "underline",
	"^":  "slide",
	"#":  "pound",
	"{":  "bracketStart",
	"}":  "bracketEnd",
	"\\": "backwardSlash",
	"=":  "equal",
}

var labelSanitizer = regexp.MustCompile(`[%_^#{}\\=]`)

// SanitizeLabel replaces characters that are unsafe in LaTeX label names
// with word substitutes.
func SanitizeLabel(name string) string {
	return labelSanitizer.ReplaceAllStringFunc(name, func(m string) string {
		return labelReplacements[m]
	})
}

// NewLabel builds a CommandInset label. The name is sanitized first.
func NewLabel(name string) *Container {
	return NewContainer("inset", "CommandInset label",
		Line("LatexCommand label"),
		Line(`name "`+SanitizeLabel(name)+`"`),
	)
}

// NewReference builds a CommandInset ref pointing at target.
func NewReference(target string) *Container {
	return NewContainer("inset", "CommandInset ref",
		Line(`reference "`+target+`"`),
	)
}

// WithLabel prepends a label inset to a layout built by NewLayout.
func WithLabel(name string) func(*Container) {
	return func(c *Container) { c.Append(NewLabel(name)) }
}

// NewLayout builds a `\begin_layout kind` container holding text, e.g.
// NewLayout("Standard", "Hello") or NewLayout("Section", "Results",
// WithLabel("results")).
func NewLayout(kind, text string, opts ...func(*Container)) *Container {
	c := NewContainer("layout", kind)
	for _, o := range opts {
		o(c)
	}
	c.Append(Line(text))
	return c
}

// NewTabular builds a longtable inset from rows of cell text. widths are
// column width percentages; when nil the columns share 95% evenly. Short
// rows are padded with empty cells so every row has the full column count.
func NewTabular(rows [][]string, widths []int) *Container {
	c := NewContainer("inset", "Tabular")
	if len(rows) == 0 {
		return c
	}

	cols := 1
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(widths) == 0 {
		widths = make([]int, cols)
		for i := range widths {
			widths[i] = int(95.0 / float64(cols))
		}
	}

	c.Append(Line(fmt.Sprintf(`<lyxtabular version="3" rows="%d" columns="%d">`, len(rows), cols)))
	c.Append(Line(`<features islongtable="true" longtabularalignment="center">`))
	for i := 0; i < cols; i++ {
		w := widths[min(i, len(widths)-1)]
		c.Append(Line(fmt.Sprintf(`<column alignment="center" valignment="top" width="%dtext%%">`, w)))
	}

	for i, row := range rows {
		c.Append(Line("<row>"))
		bottomline := "false"
		if i == len(rows)-1 {
			bottomline = "true"
		}
		for j := 0; j < cols; j++ {
			leftline := "false"
			if j == 0 {
				leftline = "true"
			}
			cell := ""
			if j < len(row) {
				cell = normalizeCell(row[j])
			}
			c.Append(Line(fmt.Sprintf(`<cell topline="true" bottomline=%q leftline=%q><text>%s</text></cell>`,
				bottomline, leftline, cell)))
		}
		c.Append(Line("</row>"))
	}
	c.Append(Line("</lyxtabular>"))
	return c
}

// normalizeCell makes identifier-ish cell text readable: underscores become
// spaces and camelCase words are split.
func normalizeCell(s string) string {
	return splitCamel(strings.ReplaceAll(s, "_", " "))
}

// splitCamel inserts a space at lower-to-upper transitions and before the
// last upper of an upper run followed by a lower (fooBar -> foo Bar,
// HTTPServer -> HTTP Server).
func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

type graphicsConfig struct {
	wide  bool
	float bool
}

// WithWide renders the figure at 70% of text width instead of 45%.
func WithWide() func(*graphicsConfig) {
	return func(g *graphicsConfig) { g.wide = true }
}

// AsFloatFigure wraps the figure in a Float figure inset instead of
// embedding it inline as a subfigure.
func AsFloatFigure() func(*graphicsConfig) {
	return func(g *graphicsConfig) { g.float = true }
}

// NewGraphics builds a Standard layout embedding a Graphics inset for
// figName with a captioned label block.
func NewGraphics(figName, caption string, opts ...func(*graphicsConfig)) *Container {
	var cfg graphicsConfig
	for _, o := range opts {
		o(&cfg)
	}

	width := "width 45text%"
	if cfg.wide {
		width = "width 70text%"
	}
	graphics := NewContainer("inset", "Graphics",
		Line(`filename "`+figName+`"`),
		Line(width),
	)
	captionBlock := NewContainer("layout", "Plain Layout",
		NewContainer("inset", "Caption",
			NewContainer("layout", "Plain Layout",
				Line(caption),
				NewLabel(figName),
			),
		),
	)

	out := NewContainer("layout", "Standard",
		NewObject("noindent", ""),
		NewObject("align", "center"),
	)
	if cfg.float {
		out.Append(NewContainer("inset", "Float figure",
			Line("wide false"),
			Line("sideways false"),
			Line("status open"),
			NewContainer("layout", "Plain Layout",
				NewObject("noindent", ""),
				NewObject("align", "center"),
				graphics,
			),
			captionBlock,
		))
	} else {
		out.Append(graphics)
		out.Append(captionBlock)
	}
	return out
}
