package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/nathanjohnson320/portfolio/internal/model"
	"github.com/nathanjohnson320/portfolio/internal/page"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [route]",
	Short: "Prints page metadata and content records as YAML",
	Long: `The inspect command prints the metadata and content records of one page,
or of every page when no route is given, as YAML documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages := page.All()
		if len(args) == 1 {
			p, ok := page.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no page at route %q", args[0])
			}
			pages = []page.Page{p}
		}
		return writeInspect(cmd.OutOrStdout(), pages)
	},
}

type pageDump struct {
	Route   string             `yaml:"route"`
	Meta    model.PageMetadata `yaml:"meta"`
	Content any                `yaml:"content"`
}

func writeInspect(w io.Writer, pages []page.Page) error {
	for i, p := range pages {
		out, err := yaml.Marshal(pageDump{Route: p.Route, Meta: p.Meta, Content: p.Content})
		if err != nil {
			return fmt.Errorf("failed to marshal page %s: %w", p.Route, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
