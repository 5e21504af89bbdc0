// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

// Package commands implements the so101ctl CLI.
package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	phosphobot "github.com/phosphobot/go-phosphobot"
	"github.com/phosphobot/go-phosphobot/internal/printer"
)

// Persistent flags shared by all subcommands
var (
	flagBaseURL    string
	flagTimeout    float64
	flagRetries    int
	flagLimitsFile string
	flagVerbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "so101ctl",
	Short: "Operate a Phosphobot SO-101 robotic arm via its HTTP API",
	Long: `so101ctl sends motion commands to a Phosphobot SO-101 controller.

Every move command is validated against a safety envelope before it is
transmitted; transient network failures are retried with exponential
backoff. The controller base URL can be set with --base-url, the
PHOSPHOBOT_BASE_URL environment variable, or a .env file in the working
directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is not an error; flags and the process
		// environment still apply. A present but unreadable one is worth
		// flagging before the command proceeds without it.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			printer.Warning("ignoring unreadable .env file: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Override the Phosphobot controller URL")
	rootCmd.PersistentFlags().Float64Var(&flagTimeout, "timeout", 5.0, "Request timeout in seconds")
	rootCmd.PersistentFlags().IntVar(&flagRetries, "retries", 3, "Maximum number of attempts for transient failures")
	rootCmd.PersistentFlags().StringVar(&flagLimitsFile, "limits-file", "", "Load movement limits from a YAML or JSON file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) logging")
}

// newClient builds a configured client from the persistent flags.
func newClient() (*phosphobot.Client, error) {
	opts := []func(*phosphobot.Client){
		phosphobot.Timeout(time.Duration(flagTimeout * float64(time.Second))),
		phosphobot.MaxRetries(flagRetries),
		phosphobot.WithLogger(newLogger(flagVerbose)),
	}

	if flagLimitsFile != "" {
		limits, err := phosphobot.LoadLimitsFile(flagLimitsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load limits: %w", err)
		}
		opts = append(opts, phosphobot.Limits(limits))
	}

	return phosphobot.NewClient(flagBaseURL, opts...)
}

// renderError prints a typed client error with its diagnostic payload and
// returns a terse error for the exit path.
func renderError(err error) error {
	var cerr *phosphobot.ClientError
	if !errors.As(err, &cerr) {
		printer.Error("%v", err)
		return err
	}

	switch cerr.Kind {
	case phosphobot.ErrorValidation:
		printer.Error("Validation error: %s", cerr.Message)
	case phosphobot.ErrorHTTP:
		printer.Error("HTTP %d: %s", cerr.StatusCode, cerr.Message)
		if cerr.Body != "" && cerr.Body != cerr.Message {
			printer.Info("response body: %s", cerr.Body)
		}
	case phosphobot.ErrorTimeout:
		printer.Error("Timeout after %d attempt(s): %s", cerr.Attempts, cerr.Message)
	case phosphobot.ErrorDecode:
		printer.Error("Response decoding error: %s", cerr.Message)
	default:
		printer.Error("Transport error: %s", cerr.Message)
	}
	return err
}
