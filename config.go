package lyxweaver

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ReportSpec describes a report to generate: which template to start from,
// where to write the result, and the data for the generated sections.
type ReportSpec struct {
	Report struct {
		Template string `yaml:"template"`
		Output   string `yaml:"output"`
	} `yaml:"report"`
	Summary struct {
		IntendedUse []string `yaml:"intended_use"`
		Description []string `yaml:"description"`
	} `yaml:"summary"`
	Outputs     []string `yaml:"outputs"`
	Limitations []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"limitations"`
}

// LoadReportSpec loads a report spec from a YAML file.
func LoadReportSpec(path string) (*ReportSpec, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML spec
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var spec ReportSpec
	if err := yaml.Unmarshal(file, &spec); err != nil {
		return nil, fmt.Errorf("parsing report spec %s: %w", path, err)
	}

	// 3. Override with environment variables if present
	if template := os.Getenv("LYXWEAVER_TEMPLATE"); template != "" {
		spec.Report.Template = template
	}
	if output := os.Getenv("LYXWEAVER_OUTPUT"); output != "" {
		spec.Report.Output = output
	}

	return &spec, nil
}

// LimitationRows converts the spec's limitation entries into the pairs the
// Limitations generator takes.
func (s *ReportSpec) LimitationRows() [][2]string {
	rows := make([][2]string, len(s.Limitations))
	for i, l := range s.Limitations {
		rows[i] = [2]string{l.Name, l.Description}
	}
	return rows
}
