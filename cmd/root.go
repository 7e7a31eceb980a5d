// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serialFlag  string
	edateFlag   string
	macFlag     string
	exportPath  string
	templateDir string
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "revpi-hat-eeprom [flags] CONFIG [OUTPUT]",
	Short: "RevPi HAT EEPROM image generator",
	Long: `Generate the binary HAT EEPROM image for a RevPi device from a JSON
board description.

CONFIG is the board description in JSON format. OUTPUT is the image file
to write (default: out.eep).

The serial number and first MAC address are per-device values. They may be
set in the config file or with --serial and --mac; a command line value
overrides the config file with a warning. The end test date defaults to
today when not given. The serial number accepts 0b, 0o and 0x prefixes.`,
	Version:      "1.0.0",
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&serialFlag, "serial", "", "Serial number of the device (overrides the config file)")
	rootCmd.Flags().StringVar(&edateFlag, "edate", "", "End test date, YYYY-MM-DD (overrides the config file)")
	rootCmd.Flags().StringVar(&macFlag, "mac", "", "First MAC address of the device (overrides the config file)")
	rootCmd.Flags().StringVar(&exportPath, "export", "", "Write the fully resolved config as JSON to this file")
	rootCmd.Flags().StringVar(&templateDir, "template-dir", "templates", "Directory searched for template files")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
