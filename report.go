package lyxweaver

import "strings"

// ReportDocument is a Document loaded from a report template, with
// generator functions for the conventional report fragments. The generators
// are pure: they format their inputs into parts, the caller decides what to
// append and when to write.
type ReportDocument struct {
	*Document
}

// NewReportDocument reads and parses a template file.
func NewReportDocument(templatePath string, opts ...Option) (*ReportDocument, error) {
	d, err := ParseFile(templatePath, opts...)
	if err != nil {
		return nil, err
	}
	return &ReportDocument{Document: d}, nil
}

// ExecutiveSummary builds the Executive Summary section: a Purpose
// subsection with one paragraph per intended use and a Summary of
// Description subsection with one paragraph per description line. Empty
// inputs get the template placeholders.
func ExecutiveSummary(intendedUse, description []string) *Part {
	purpose := NewPart(NewLayout("Subsection", "Purpose", WithLabel("summary-purpose")))
	if len(intendedUse) == 0 {
		purpose.Append(NewLayout("Standard", "is used for"))
	}
	for _, use := range intendedUse {
		purpose.Append(NewLayout("Standard", use))
	}

	summary := NewPart(NewLayout("Subsection", "Summary of Description", WithLabel("summary-description")))
	if len(description) == 0 {
		summary.Append(NewLayout("Standard", "Description here"))
		summary.Append(NewLayout("Standard", "Description here too"))
	}
	for _, desc := range description {
		summary.Append(NewLayout("Standard", desc))
	}

	return NewPart(
		NewLayout("Section", "Executive Summary", WithLabel("summary")),
		purpose,
		summary,
	)
}

// Outputs builds the Outputs subsection with one paragraph per output, in
// input order.
func Outputs(outputs []string) *Part {
	p := NewPart(NewLayout("Subsection", "Outputs", WithLabel("outputs")))
	if len(outputs) == 0 {
		p.Append(NewLayout("Standard", "Description"))
		return p
	}
	for _, out := range outputs {
		p.Append(NewLayout("Standard", out))
	}
	return p
}

// Limitations builds the Limitations section as a definition list: one
// Description layout per [name, description] pair, in input order.
func Limitations(rows [][2]string) *Part {
	p := NewPart(NewLayout("Section", "Limitations", WithLabel("limitations")))
	if len(rows) == 0 {
		p.Append(NewLayout("Standard", "Description"))
		return p
	}
	for _, row := range rows {
		p.Append(NewLayout("Description", strings.TrimSpace(row[0]+" "+row[1])))
	}
	return p
}

// LimitationsTable is the tabular variant of Limitations: the rows go into
// a longtable inset inside a Standard layout.
func LimitationsTable(rows [][]string) *Part {
	p := NewPart(NewLayout("Section", "Limitations", WithLabel("limitations")))
	if len(rows) == 0 {
		p.Append(NewLayout("Standard", "Description"))
		return p
	}
	layout := NewContainer("layout", "Standard")
	layout.Append(NewTabular(rows, []int{10, 28, 30, 30}))
	p.Append(layout)
	return p
}
