package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/imagaram/sfr-sdk-go/config"
	"github.com/imagaram/sfr-sdk-go/cryptoasset"
	"github.com/imagaram/sfr-sdk-go/filter"
	"github.com/imagaram/sfr-sdk-go/format"
	"github.com/imagaram/sfr-sdk-go/learning"
)

var (
	cfgFile        string
	cfg            *config.Config
	logger         zerolog.Logger
	learningClient *learning.Client
	cryptoClient   *cryptoasset.Client
	filters        *filter.Manager

	// Command flags
	debug      bool
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sfr",
	Short: "Command line client for the SFR learning and token APIs",
	Long: `sfr talks to the SFR learning API (spaces, content, quizzes) and the
SFR token API (balances, governance, statistics). Connection settings come
from config.yaml and SFR_* environment variables.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every API request and response")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(learningCmd)
	rootCmd.AddCommand(cryptoCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and builds the API clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("debug") {
		cfg.Learning.Debug = debug
		cfg.Crypto.Debug = debug
		if debug {
			cfg.Logging.Level = "debug"
		}
	}

	logger = setupLogger(cfg.Logging)

	learningClient, err = learning.New(cfg.Learning.BaseURL, logger, cfg.Learning.Options()...)
	if err != nil {
		return err
	}

	cryptoClient, err = cryptoasset.New(cfg.Crypto.BaseURL, logger, cfg.Crypto.Options()...)
	if err != nil {
		return err
	}

	filters = filter.NewManager(filter.WithLogger(logger))
	if err := filters.RegisterAll(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	return nil
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	if filters == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return filters.Close(ctx)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// selectedFilter returns the --filter expression, else the --preset name.
func selectedFilter() (expression, presetName string) {
	return strings.TrimSpace(filterExpr), strings.TrimSpace(preset)
}

// applyFilter narrows items with --filter or --preset, if either is set.
func applyFilter[T any](ctx context.Context, items []T) ([]filter.Record, error) {
	records, err := filter.ToRecords(items)
	if err != nil {
		return nil, err
	}

	expression, presetName := selectedFilter()
	switch {
	case expression != "":
		return filters.ApplyExpression(ctx, expression, records)
	case presetName != "":
		return filters.Apply(ctx, presetName, records)
	}
	return records, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// printAPIError prints a localized message for API failures and passes the
// error on so the exit status reflects it.
func printAPIError(err error) error {
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %s\n", format.ErrorMessage(err))
	}
	return err
}
