// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/google/uuid"
)

// DeriveUUID computes the board UUID from its identity fields when no
// explicit UUID is configured. The fields are concatenated little-endian
// into a 10-byte buffer, digested with MD5 and stamped as a version 3
// (MD5-derived) UUID. The derivation is deterministic: the same identity
// always yields the same UUID.
func DeriveUUID(pid, pver, prev uint16, serial uint32) uuid.UUID {
	var buf [10]byte
	binary.LittleEndian.PutUint16(buf[0:2], pid)
	binary.LittleEndian.PutUint16(buf[2:4], pver)
	binary.LittleEndian.PutUint16(buf[4:6], prev)
	binary.LittleEndian.PutUint32(buf[6:10], serial)

	id := uuid.UUID(md5.Sum(buf[:]))
	id[6] = id[6]&0x0f | 0x30 // version 3
	id[8] = id[8]&0x3f | 0x80 // RFC 4122 variant
	return id
}
