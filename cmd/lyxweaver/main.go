package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/grahms/lyxweaver"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "lyxweaver",
		Short: "Compose and edit LyX report documents",
	}
	specPath string
	tagName  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	generateCmd.Flags().StringVarP(&specPath, "spec", "s", "report.yaml", "Path to the report spec (YAML)")
	inspectCmd.Flags().StringVarP(&tagName, "tag", "t", "layout", "Tag or layout attribute to search for")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a report from a template and a report spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := lyxweaver.LoadReportSpec(specPath)
		if err != nil {
			return err
		}

		doc, err := lyxweaver.NewReportDocument(spec.Report.Template)
		if err != nil {
			return err
		}

		doc.Append(lyxweaver.ExecutiveSummary(spec.Summary.IntendedUse, spec.Summary.Description))
		doc.Append(lyxweaver.Outputs(spec.Outputs))
		doc.Append(lyxweaver.Limitations(spec.LimitationRows()))

		if err := doc.ToFile(spec.Report.Output); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", spec.Report.Output)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.lyx>",
	Short: "Parse a document and list the nodes matching a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := lyxweaver.ParseFile(args[0])
		if err != nil {
			return err
		}

		matches := doc.FindTag(tagName)
		fmt.Printf("%d match(es) for %q in %s\n", len(matches), tagName, args[0])
		for i, n := range matches {
			switch t := n.(type) {
			case *lyxweaver.Container:
				first := ""
				if len(t.Children) > 0 {
					first = strings.TrimSpace(t.Children[0].Render())
				}
				fmt.Printf("%3d: \\begin_%s %s | %s\n", i, t.Tag, t.Attribute, first)
			case *lyxweaver.Object:
				fmt.Printf("%3d: \\%s %s\n", i, t.Tag, t.Attribute)
			}
		}
		return nil
	},
}
