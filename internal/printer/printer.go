// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

// Package printer provides colored console output for so101ctl.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	green.Printf("✓ "+format+"\n", a...)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
}

// Warning prints a warning message in yellow
func Warning(format string, a ...any) {
	yellow.Printf("! "+format+"\n", a...)
}

// Error prints an error message in red to stderr
func Error(format string, a ...any) {
	red.Fprintf(os.Stderr, "✗ "+format+"\n", a...)
}

// JSON pretty-prints a JSON payload to stdout
func JSON(raw string) {
	fmt.Print(gjson.Get(raw, "@pretty").String())
}
