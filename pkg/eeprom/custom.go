// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

// CustomData is the payload of a manufacturer custom data atom: opaque
// bytes whose meaning is defined by the vendor.
type CustomData struct {
	data []byte
}

// NewCustomData builds a custom data payload.
func NewCustomData(data []byte) *CustomData {
	return &CustomData{data: data}
}

// NewCustomString builds a custom data payload from an ASCII string.
func NewCustomString(s string) *CustomData {
	return &CustomData{data: []byte(s)}
}

// Len implements Payload.
func (d *CustomData) Len() int { return len(d.data) }

// AppendTo implements Payload.
func (d *CustomData) AppendTo(buf []byte) []byte {
	return append(buf, d.data...)
}
