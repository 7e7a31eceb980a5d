// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// maxVendorStringLen is the largest vendor or product string that fits the
// single-byte length fields of the vendor info atom.
const maxVendorStringLen = 255

// VendorData is the payload of the vendor info atom.
//
//	Bytes   Field
//	16      uuid   UUID, stored byte-reversed
//	2       pid    product ID
//	2       pver   product version
//	1       vslen  vendor string length
//	1       pslen  product string length
//	X       vstr   ASCII vendor string
//	Y       pstr   ASCII product string
type VendorData struct {
	uuid uuid.UUID
	pid  uint16
	pver uint16
	vstr string
	pstr string
}

// NewVendorData builds a vendor info payload. It fails with an
// OversizeStringError if either string does not fit its length byte;
// strings are never silently truncated.
func NewVendorData(id uuid.UUID, pid, pver uint16, vstr, pstr string) (*VendorData, error) {
	if len(vstr) > maxVendorStringLen {
		return nil, &OversizeStringError{Field: "vendor string", Len: len(vstr)}
	}
	if len(pstr) > maxVendorStringLen {
		return nil, &OversizeStringError{Field: "product string", Len: len(pstr)}
	}
	return &VendorData{uuid: id, pid: pid, pver: pver, vstr: vstr, pstr: pstr}, nil
}

// UUID returns the board UUID.
func (d *VendorData) UUID() uuid.UUID { return d.uuid }

// Len implements Payload.
func (d *VendorData) Len() int {
	return 16 + 2 + 2 + 1 + 1 + len(d.vstr) + len(d.pstr)
}

// AppendTo implements Payload.
func (d *VendorData) AppendTo(buf []byte) []byte {
	// The UUID is stored in reverse byte order in the EEPROM.
	for i := len(d.uuid) - 1; i >= 0; i-- {
		buf = append(buf, d.uuid[i])
	}
	buf = binary.LittleEndian.AppendUint16(buf, d.pid)
	buf = binary.LittleEndian.AppendUint16(buf, d.pver)
	buf = append(buf, uint8(len(d.vstr)), uint8(len(d.pstr)))
	buf = append(buf, d.vstr...)
	buf = append(buf, d.pstr...)
	return buf
}
