// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"encoding/binary"
	"slices"
)

// EEPROM header constants.
//
//	Bytes   Field
//	4       signature   0x52, 0x2D, 0x50, 0x69 ("R-Pi" in ASCII)
//	1       version     data format version (0x00 reserved, 0x01 first)
//	1       reserved    set to 0
//	2       numatoms    total atoms in EEPROM
//	4       eeplen      total length in bytes including this header
const (
	headerLen     = 13
	signature     = 0x69502D52 // "R-Pi" as little-endian u32
	formatVersion = 0x01

	// maxAtoms is the largest stream the 16-bit atom count can address.
	maxAtoms = 0xFFFF
)

// nextAtomTypes is the atom ordering protocol: for the type of the most
// recently accepted atom (atomTypeNone for an empty stream) it lists the
// types the stream accepts next. The GPIO bank1 map is terminal.
var nextAtomTypes = map[AtomType][]AtomType{
	atomTypeNone:            {AtomTypeVendorInfo},
	AtomTypeVendorInfo:      {AtomTypeGpioBank0Map},
	AtomTypeGpioBank0Map:    {AtomTypeLinuxDTB, AtomTypeManufCustomData, AtomTypeGpioBank1Map},
	AtomTypeLinuxDTB:        {AtomTypeManufCustomData, AtomTypeGpioBank1Map},
	AtomTypeManufCustomData: {AtomTypeManufCustomData, AtomTypeGpioBank1Map},
	AtomTypeGpioBank1Map:    {},
}

// Stream is an ordered list of atoms plus the EEPROM header. It owns its
// atoms and assigns their count fields; Push rejects atoms that would
// violate the ordering protocol without modifying the stream.
type Stream struct {
	atoms []Atom
}

// NewStream creates a stream with the two mandatory leading atoms: the
// vendor info and the bank 0 GPIO map.
func NewStream(vendor *VendorData, bank0 *GpioMapData) *Stream {
	s := &Stream{}
	// The empty->vendor->bank0 transitions are always legal.
	s.atoms = append(s.atoms, Atom{atype: AtomTypeVendorInfo, count: 0, data: vendor})
	s.atoms = append(s.atoms, Atom{atype: AtomTypeGpioBank0Map, count: 1, data: bank0})
	return s
}

// state returns the type of the most recently accepted atom.
func (s *Stream) state() AtomType {
	if len(s.atoms) == 0 {
		return atomTypeNone
	}
	return s.atoms[len(s.atoms)-1].atype
}

// Push appends an atom, assigning its count from the current stream length.
// It fails with an OrderError if the atom's type is not acceptable in the
// current state, or a CountOverflowError if the stream is full; in both
// cases the stream is left unchanged.
func (s *Stream) Push(a Atom) error {
	accepted := nextAtomTypes[s.state()]
	if !slices.Contains(accepted, a.atype) {
		return &OrderError{Atom: a.atype, Previous: s.state(), Accepted: accepted}
	}
	if len(s.atoms) >= maxAtoms {
		return &CountOverflowError{}
	}
	a.count = uint16(len(s.atoms))
	s.atoms = append(s.atoms, a)
	return nil
}

// NumAtoms returns the number of atoms in the stream.
func (s *Stream) NumAtoms() int { return len(s.atoms) }

// Len returns the total image size in bytes: header plus every atom
// including its CRC trailer.
func (s *Stream) Len() int {
	total := headerLen
	for _, a := range s.atoms {
		total += a.Len()
	}
	return total
}

// Bytes serializes the stream into the final EEPROM image.
func (s *Stream) Bytes() []byte {
	buf := make([]byte, 0, s.Len())
	buf = binary.LittleEndian.AppendUint32(buf, signature)
	buf = append(buf, formatVersion, 0x00)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(s.atoms)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(s.Len()))
	for _, a := range s.atoms {
		buf = a.appendTo(buf)
	}
	return buf
}
