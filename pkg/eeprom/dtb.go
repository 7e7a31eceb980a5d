// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

// LinuxDTBData is the payload of the Linux device tree atom: either a full
// device tree blob or the name of an overlay for the bootloader to load.
// The two modes are not distinguishable on the wire.
type LinuxDTBData struct {
	data []byte
}

// NewLinuxDTBBlob builds a device tree payload from a compiled blob.
func NewLinuxDTBBlob(blob []byte) *LinuxDTBData {
	return &LinuxDTBData{data: blob}
}

// NewLinuxDTBName builds a device tree payload from an overlay name.
func NewLinuxDTBName(name string) *LinuxDTBData {
	return &LinuxDTBData{data: []byte(name)}
}

// Len implements Payload.
func (d *LinuxDTBData) Len() int { return len(d.data) }

// AppendTo implements Payload.
func (d *LinuxDTBData) AppendTo(buf []byte) []byte {
	return append(buf, d.data...)
}
