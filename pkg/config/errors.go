// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package config

import (
	"fmt"

	"github.com/RevolutionPi/revpi-hat-eeprom/pkg/eeprom"
)

// ValidationError reports a board description that is syntactically valid
// JSON but semantically unusable.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ReservedGpioError reports use of gpio 0 or 1, which are wired to the HAT
// EEPROM itself and must never appear in a bank definition.
type ReservedGpioError struct {
	Gpio int
}

func (e *ReservedGpioError) Error() string {
	return fmt.Sprintf("gpio %d is reserved for the HAT EEPROM (gpios 0 and 1 mustn't be configured)", e.Gpio)
}

// GpioRangeError reports a pin index outside its bank's valid span.
type GpioRangeError struct {
	Gpio int
	Bank eeprom.GpioBank
	Min  int
	Max  int
}

func (e *GpioRangeError) Error() string {
	return fmt.Sprintf("gpio %d outside of %s (valid: %d-%d)", e.Gpio, e.Bank, e.Min, e.Max)
}

// DuplicateGpioError reports a pin index configured more than once within
// a bank.
type DuplicateGpioError struct {
	Gpio int
}

func (e *DuplicateGpioError) Error() string {
	return fmt.Sprintf("gpio %d defined more than once", e.Gpio)
}
