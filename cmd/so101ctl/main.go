// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package main

import (
	"os"

	"github.com/phosphobot/go-phosphobot/cmd/so101ctl/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
