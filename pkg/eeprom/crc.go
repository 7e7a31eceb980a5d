// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import "github.com/sigurn/crc16"

// The HAT EEPROM format checksums every atom with CRC-16/ARC
// (polynomial 0x8005, init 0x0000, reflected, no final XOR).
var atomCRCTable = crc16.MakeTable(crc16.CRC16_ARC)

// atomChecksum computes the CRC-16/ARC over an atom's type tag, count,
// declared length and payload.
func atomChecksum(data []byte) uint16 {
	return crc16.Checksum(data, atomCRCTable)
}
