// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH
//
// revpi-hat-eeprom - RevPi HAT EEPROM image generator
//
// Generates the binary HAT EEPROM image for a RevPi device from a JSON
// board description.

package main

import (
	"os"

	"github.com/RevolutionPi/revpi-hat-eeprom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
