// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/phosphobot/go-phosphobot/internal/printer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Move the arm into its safe initialization pose",
	Long: `Move the arm into its safe initialization pose.

Examples:
  # Initialize the arm on the default controller
  so101ctl init

  # Initialize a remote controller with a longer timeout
  so101ctl --base-url http://robot.local:8020 --timeout 10 init`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		printer.Error("%v", err)
		return err
	}
	defer client.Close()

	res, err := client.MoveInit(context.Background())
	if err != nil {
		return renderError(err)
	}

	printer.Success("moved to initialization pose")
	printer.JSON(res.Raw)
	return nil
}
