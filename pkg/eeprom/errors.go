// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"fmt"
	"strings"
)

// GpioError reports a GPIO index outside the valid span of its bank.
type GpioError struct {
	Gpio int
	Bank GpioBank
}

func (e *GpioError) Error() string {
	min, max := e.Bank.gpioRange()
	return fmt.Sprintf("gpio %d (%s): index out of bound (valid %d-%d)",
		e.Gpio, e.Bank, min, max)
}

// OrderError reports an atom appended out of sequence. Previous is
// atomTypeNone when the stream was empty; Accepted lists the types the
// stream would have taken instead.
type OrderError struct {
	Atom     AtomType
	Previous AtomType
	Accepted []AtomType
}

func (e *OrderError) Error() string {
	prev := "none"
	if e.Previous != atomTypeNone {
		prev = e.Previous.String()
	}
	if len(e.Accepted) == 0 {
		return fmt.Sprintf("%s atom not allowed after %s atom (stream is complete)",
			e.Atom, prev)
	}
	accepted := make([]string, len(e.Accepted))
	for i, t := range e.Accepted {
		accepted[i] = t.String()
	}
	return fmt.Sprintf("%s atom not allowed after %s atom (accepted: %s)",
		e.Atom, prev, strings.Join(accepted, ", "))
}

// OversizeStringError reports a vendor or product string whose byte length
// does not fit the single-byte length field.
type OversizeStringError struct {
	Field string
	Len   int
}

func (e *OversizeStringError) Error() string {
	return fmt.Sprintf("%s too long: %d bytes (max %d)", e.Field, e.Len, maxVendorStringLen)
}

// CountOverflowError reports an attempt to append more atoms than the
// 16-bit atom count can address.
type CountOverflowError struct{}

func (e *CountOverflowError) Error() string {
	return fmt.Sprintf("too many atoms in stream (max %d)", maxAtoms)
}
