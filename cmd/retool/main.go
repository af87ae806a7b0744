// Package main is the entry point for the retool CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-retool/internal/config"
	"github.com/KirkDiggler/rpg-retool/internal/errors"
)

var (
	envFile  string
	logLevel string
	workers  int

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "retool",
	Short: "Convert 5e.tools data into flat records",
	Long: `retool converts 5e.tools feat and race documents into flat JSON records
with rendered rules text, and can publish the results to a Redis catalog.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides RETOOL_LOG_LEVEL)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "concurrent items per document (overrides RETOOL_WORKERS)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if !config.LoadDotEnv(envFile) {
			return errors.NotFoundf("env file %s could not be loaded", envFile)
		}
	} else {
		config.LoadDotEnv()
	}

	if logLevel != "" {
		if err := os.Setenv(config.EnvLogLevel, logLevel); err != nil {
			return errors.Wrap(err, "failed to apply --log-level")
		}
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		loaded.Workers = workers
	}

	cfg = loaded
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		"workers", cfg.Workers,
		"redis_addr", cfg.Redis.Addr,
		"log_level", cfg.LogLevel.String())
	return nil
}
