package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/icon"
	"github.com/nathanjohnson320/portfolio/internal/page"
	"github.com/nathanjohnson320/portfolio/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates every page's metadata and content records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(page.All(), logger)
	},
}

func runCheck(pages []page.Page, log *zap.Logger) error {
	if err := site.Check(pages, icon.Default(), log); err != nil {
		return err
	}
	log.Info("all pages valid", zap.Int("pages", len(pages)))
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
