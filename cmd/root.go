package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/config"
	"github.com/nathanjohnson320/portfolio/internal/logging"
)

var (
	cfgFile        string
	configFileUsed string
	appConfig      config.Config
	logger         = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Builds and serves the portfolio site",
	Long: `portfolio renders the about and uses pages from their compiled-in
content, wraps them in the site layout, and writes a static HTML site to the
configured output directory (default './public/').`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, used, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	configFileUsed = used

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l

	if used != "" {
		logger.Info("using config file", zap.String("path", used))
	} else {
		logger.Info("no config file found, using defaults and environment")
	}
	return nil
}
