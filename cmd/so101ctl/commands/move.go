// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package commands

import (
	"context"

	"github.com/spf13/cobra"

	phosphobot "github.com/phosphobot/go-phosphobot"
	"github.com/phosphobot/go-phosphobot/internal/printer"
)

var (
	moveX     float64
	moveY     float64
	moveZ     float64
	moveRoll  float64
	movePitch float64
	moveYaw   float64
	moveGrip  int
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Send an absolute TCP pose and gripper command",
	Long: `Send an absolute tool-center-point pose and gripper command.

Positions are in centimetres, angles in degrees and the gripper opening in
percent. The command is validated against the active movement limits before
anything is transmitted.

Examples:
  # Reach forward and half-close the gripper
  so101ctl move --x 25 --y 0 --z 15 --roll 0 --pitch -30 --yaw 0 --grip 50

  # Use a custom safety envelope
  so101ctl --limits-file limits.yaml move --x 25 --y 0 --z 15 --roll 0 --pitch 0 --yaw 0 --grip 0`,
	RunE: runMove,
}

func init() {
	moveCmd.Flags().Float64Var(&moveX, "x", 0, "Target X position in cm (required)")
	moveCmd.Flags().Float64Var(&moveY, "y", 0, "Target Y position in cm (required)")
	moveCmd.Flags().Float64Var(&moveZ, "z", 0, "Target Z position in cm (required)")
	moveCmd.Flags().Float64Var(&moveRoll, "roll", 0, "Roll angle in degrees (required)")
	moveCmd.Flags().Float64Var(&movePitch, "pitch", 0, "Pitch angle in degrees (required)")
	moveCmd.Flags().Float64Var(&moveYaw, "yaw", 0, "Yaw angle in degrees (required)")
	moveCmd.Flags().IntVar(&moveGrip, "grip", 0, "Gripper opening percentage 0-100 (required)")
	for _, flag := range []string{"x", "y", "z", "roll", "pitch", "yaw", "grip"} {
		_ = moveCmd.MarkFlagRequired(flag)
	}
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		printer.Error("%v", err)
		return err
	}
	defer client.Close()

	pose := phosphobot.Pose{
		XCm:      moveX,
		YCm:      moveY,
		ZCm:      moveZ,
		RollDeg:  moveRoll,
		PitchDeg: movePitch,
		YawDeg:   moveYaw,
		Grip:     moveGrip,
	}

	res, err := client.MoveAbsolute(context.Background(), pose)
	if err != nil {
		return renderError(err)
	}

	printer.Success("moved to (x=%.2fcm, y=%.2fcm, z=%.2fcm, roll=%.2fdeg, pitch=%.2fdeg, yaw=%.2fdeg, grip=%d%%)",
		pose.XCm, pose.YCm, pose.ZCm, pose.RollDeg, pose.PitchDeg, pose.YawDeg, pose.Grip)
	printer.JSON(res.Raw)
	return nil
}
