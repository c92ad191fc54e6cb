package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/window-walker/internal/config"
	"github.com/mj1618/window-walker/internal/logger"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/version"
	"github.com/mj1618/window-walker/internal/walker"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "window-walker",
	Short:         "Walk through application windows across virtual desktops",
	Long:          "A Windows 11 CLI that switches focus to each open application window in turn, across virtual desktops, and optionally types a message into each one.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// appConfig is loaded by the root command before any subcommand runs.
var appConfig *config.Config

func Execute() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, walker.ErrNotAuthorized) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	logger.CloseLogFile()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status. Per-window
// failures are reported in the walk result and never reach here.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default <user config dir>/window-walker/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
		logger.SetLevel(logLevel)

		logFile, _ := rootCmd.PersistentFlags().GetString("log-file")
		if logFile == "" {
			logFile = cfg.LogFile
		}
		if logFile != "" {
			if err := logger.SetOutputFile(logFile); err != nil {
				return err
			}
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// currentConfig returns the loaded config, or the defaults when the root
// pre-run hook has not run (e.g. in tests).
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}
