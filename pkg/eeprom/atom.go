// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

// Package eeprom builds Raspberry Pi HAT EEPROM images.
//
// An image is a 13-byte header followed by a sequence of atoms. Every atom
// carries a type tag, its position in the stream, a declared length and a
// CRC-16/ARC trailer. Atoms must be appended in the order required by the
// HAT EEPROM format; Stream enforces that order on insertion.
//
// The package is write-only: it produces images, it does not parse them.
package eeprom

import "encoding/binary"

// AtomType is the 16-bit wire tag of an atom.
type AtomType uint16

// Atom types as defined by the HAT EEPROM format.
const (
	AtomTypeVendorInfo      AtomType = 0x0001
	AtomTypeGpioBank0Map    AtomType = 0x0002
	AtomTypeLinuxDTB        AtomType = 0x0003
	AtomTypeManufCustomData AtomType = 0x0004
	AtomTypeGpioBank1Map    AtomType = 0x0005
)

// atomTypeNone marks a stream that holds no atoms yet. 0x0000 is an invalid
// atom type on the wire so it can never collide with a real tag.
const atomTypeNone AtomType = 0x0000

func (t AtomType) String() string {
	switch t {
	case AtomTypeVendorInfo:
		return "vendor info"
	case AtomTypeGpioBank0Map:
		return "GPIO bank0 map"
	case AtomTypeLinuxDTB:
		return "Linux DTB"
	case AtomTypeManufCustomData:
		return "manufacturer custom data"
	case AtomTypeGpioBank1Map:
		return "GPIO bank1 map"
	default:
		return "invalid"
	}
}

// Payload is the typed data section of an atom.
type Payload interface {
	// Len returns the payload length in bytes, excluding the CRC trailer.
	Len() int
	// AppendTo appends the payload's wire encoding to buf.
	AppendTo(buf []byte) []byte
}

// atomOverhead is the per-atom framing: 2 bytes type, 2 bytes count,
// 4 bytes dlen, 2 bytes CRC-16.
const atomOverhead = 2 + 2 + 4 + 2

// Atom is one typed record of the stream. The count field is assigned by
// the owning Stream on insertion; atoms are only ever encoded as part of a
// stream.
type Atom struct {
	atype AtomType
	count uint16
	data  Payload
}

// NewLinuxDTBAtom wraps a device tree payload in an atom.
func NewLinuxDTBAtom(data *LinuxDTBData) Atom {
	return Atom{atype: AtomTypeLinuxDTB, data: data}
}

// NewCustomAtom wraps vendor-defined opaque data in an atom.
func NewCustomAtom(data *CustomData) Atom {
	return Atom{atype: AtomTypeManufCustomData, data: data}
}

// NewGpioBank1Atom wraps the bank 1 GPIO map in an atom.
func NewGpioBank1Atom(data *GpioMapData) Atom {
	return Atom{atype: AtomTypeGpioBank1Map, data: data}
}

// Type returns the atom's wire tag.
func (a Atom) Type() AtomType { return a.atype }

// Len returns the encoded size of the atom including framing and CRC.
func (a Atom) Len() int { return atomOverhead + a.data.Len() }

// appendTo appends the atom's wire encoding to buf. The declared length is
// the payload length plus the 2-byte CRC; the CRC covers everything from
// the type tag through the payload.
func (a Atom) appendTo(buf []byte) []byte {
	start := len(buf)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(a.atype))
	buf = binary.LittleEndian.AppendUint16(buf, a.count)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(a.data.Len()+2))
	buf = a.data.AppendTo(buf)
	crc := atomChecksum(buf[start:])
	return binary.LittleEndian.AppendUint16(buf, crc)
}
