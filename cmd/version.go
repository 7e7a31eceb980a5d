// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", rootCmd.Name(), rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
