package lyxweaver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionedBody = `\begin_document
\begin_body
\begin_layout Standard
Preamble text before any section.
\end_layout
\begin_layout Section
Data
\end_layout
\begin_layout Standard
Data paragraph.
\end_layout
\begin_layout Subsection
Sources
\end_layout
\begin_layout Standard
Sources paragraph.
\end_layout
\begin_layout Section
Results
\end_layout
\begin_layout Standard
Results paragraph.
\end_layout
\end_body
\end_document`

func Test_Parts(t *testing.T) {
	t.Run("should group body layouts into a section hierarchy", func(t *testing.T) {
		doc, err := Parse(sectionedBody)
		require.NoError(t, err)

		parts := doc.Parts()
		require.Len(t, parts, 2)

		data := parts[0]
		assert.Equal(t, "Data", data.Name())
		assert.Equal(t, "Section", data.Attribute())
		// One paragraph plus the nested Subsection part.
		require.Len(t, data.Children, 2)
		sources, ok := data.Children[1].(*Part)
		require.True(t, ok)
		assert.Equal(t, "Sources", sources.Name())
		require.Len(t, sources.Children, 1)
		assert.Contains(t, sources.Children[0].Render(), "Sources paragraph.")

		results := parts[1]
		assert.Equal(t, "Results", results.Name())
		require.Len(t, results.Children, 1)
	})

	t.Run("should close a subsection when a sibling section starts", func(t *testing.T) {
		doc, err := Parse(sectionedBody)
		require.NoError(t, err)
		parts := doc.Parts()
		// Results must be a top-level part, not a child of Sources.
		assert.Equal(t, "Results", parts[1].Name())
		_, nested := parts[0].Children[1].(*Part)
		assert.True(t, nested)
	})

	t.Run("should respect custom section levels", func(t *testing.T) {
		input := strings.Join([]string{
			`\begin_body`,
			`\begin_layout Chapter`,
			`One`,
			`\end_layout`,
			`\begin_layout Section`,
			`Nested`,
			`\end_layout`,
			`\end_body`,
		}, "\n")
		doc, err := Parse(input, WithSectionLevels("Chapter", "Section"))
		require.NoError(t, err)
		parts := doc.Parts()
		require.Len(t, parts, 1)
		assert.Equal(t, "One", parts[0].Name())
		nested, ok := parts[0].Children[0].(*Part)
		require.True(t, ok)
		assert.Equal(t, "Nested", nested.Name())
	})

	t.Run("should return nil when the document has no body", func(t *testing.T) {
		doc, err := Parse(`\begin_header` + "\n" + `\end_header`)
		require.NoError(t, err)
		assert.Nil(t, doc.Parts())
	})

	t.Run("should render a part as header followed by content", func(t *testing.T) {
		doc, err := Parse(sectionedBody)
		require.NoError(t, err)
		rendered := doc.Parts()[1].Render()
		assert.True(t, strings.HasPrefix(rendered, `\begin_layout Section`))
		assert.Contains(t, rendered, "Results paragraph.")
	})
}
