// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeriveUUID(t *testing.T) {
	// Digest of 9A 02 78 00 03 00 45 23 01 00 with version/variant stamped.
	want := uuid.MustParse("6cda9979-8831-3cb2-8840-172bc639a763")
	if got := DeriveUUID(0x29A, 120, 3, 0x12345); got != want {
		t.Errorf("DeriveUUID = %s, want %s", got, want)
	}
}

func TestDeriveUUIDDeterministic(t *testing.T) {
	a := DeriveUUID(666, 333, 3, 0xC0FFEE)
	b := DeriveUUID(666, 333, 3, 0xC0FFEE)
	if a != b {
		t.Errorf("identical inputs yield different UUIDs: %s vs %s", a, b)
	}
}

func TestDeriveUUIDInputSensitivity(t *testing.T) {
	base := DeriveUUID(666, 333, 3, 0xC0FFEE)
	variants := map[string]uuid.UUID{
		"pid":    DeriveUUID(667, 333, 3, 0xC0FFEE),
		"pver":   DeriveUUID(666, 334, 3, 0xC0FFEE),
		"prev":   DeriveUUID(666, 333, 4, 0xC0FFEE),
		"serial": DeriveUUID(666, 333, 3, 0xC0FFEF),
	}
	for field, got := range variants {
		if got == base {
			t.Errorf("changing %s did not change the UUID", field)
		}
	}
}

func TestDeriveUUIDVersionAndVariant(t *testing.T) {
	id := DeriveUUID(1, 2, 3, 4)
	if id.Version() != 3 {
		t.Errorf("version = %d, want 3 (MD5 derived)", id.Version())
	}
	if id.Variant() != uuid.RFC4122 {
		t.Errorf("variant = %v, want RFC4122", id.Variant())
	}
}
