package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/config"
	"github.com/nathanjohnson320/portfolio/internal/page"
	"github.com/nathanjohnson320/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site",
	Long: `The build command validates every page, renders it into the site
layout, copies the bundled and './static/' assets, writes the icon sprite, and
generates the site in the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig, logger)
	},
}

func runBuild(cfg config.Config, log *zap.Logger) error {
	b, err := site.NewBuilder(cfg, log, page.All())
	if err != nil {
		return err
	}
	return b.Build()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
