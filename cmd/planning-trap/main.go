package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/planning-trap/internal/config"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

// loadApp reads the optional configuration file and builds the logger.
func (o *rootOptions) loadApp() (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadOptionalConfiguration(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", o.configPath, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := initializeLogger(conf.Logging, o.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "planning-trap",
		Short:         "Calculate what over-planning costs you",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile,
		"path to configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newCalculateCommand(opts),
		newInsightsCommand(),
		newServeCommand(opts),
	)
	return rootCmd
}

func newInsightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print the total damage thresholds and their messages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			output.InsightTable(cmd.OutOrStdout())
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
