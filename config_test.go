package lyxweaver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `report:
  template: templates/model-card.lyx
  output: out/model-card.lyx
summary:
  intended_use:
    - scoring loan applications
  description:
    - gradient boosted model
    - monthly retraining
outputs:
  - model card
  - validation report
limitations:
  - name: scope
    description: single model only
  - name: data
    description: trained on 2024 data
`

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(specYAML), 0o644))
	return path
}

func Test_ReportSpec(t *testing.T) {
	t.Run("should load all sections from yaml", func(t *testing.T) {
		spec, err := LoadReportSpec(writeSpec(t))
		require.NoError(t, err)

		assert.Equal(t, "templates/model-card.lyx", spec.Report.Template)
		assert.Equal(t, "out/model-card.lyx", spec.Report.Output)
		assert.Equal(t, []string{"scoring loan applications"}, spec.Summary.IntendedUse)
		assert.Len(t, spec.Summary.Description, 2)
		assert.Equal(t, []string{"model card", "validation report"}, spec.Outputs)
		require.Len(t, spec.Limitations, 2)
		assert.Equal(t, "scope", spec.Limitations[0].Name)
	})

	t.Run("should let environment variables override paths", func(t *testing.T) {
		t.Setenv("LYXWEAVER_TEMPLATE", "elsewhere/tpl.lyx")
		t.Setenv("LYXWEAVER_OUTPUT", "elsewhere/out.lyx")
		spec, err := LoadReportSpec(writeSpec(t))
		require.NoError(t, err)
		assert.Equal(t, "elsewhere/tpl.lyx", spec.Report.Template)
		assert.Equal(t, "elsewhere/out.lyx", spec.Report.Output)
	})

	t.Run("should convert limitation entries into generator pairs", func(t *testing.T) {
		spec, err := LoadReportSpec(writeSpec(t))
		require.NoError(t, err)
		rows := spec.LimitationRows()
		require.Len(t, rows, 2)
		assert.Equal(t, [2]string{"scope", "single model only"}, rows[0])
		assert.Equal(t, [2]string{"data", "trained on 2024 data"}, rows[1])
	})

	t.Run("should surface a ReadError for a missing spec file", func(t *testing.T) {
		_, err := LoadReportSpec(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		var readErr *ReadError
		assert.ErrorAs(t, err, &readErr)
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("report: [unclosed"), 0o644))
		_, err := LoadReportSpec(path)
		assert.Error(t, err)
	})
}
