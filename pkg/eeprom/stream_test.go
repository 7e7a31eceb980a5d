// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func testVendorData(t *testing.T) *VendorData {
	t.Helper()
	data, err := NewVendorData(
		uuid.MustParse("67e55044-10b1-426f-9247-bb680e5fe0c8"),
		0x29A, 120, "KUNBUS GmbH", "Test Board")
	if err != nil {
		t.Fatalf("NewVendorData failed: %v", err)
	}
	return data
}

func testBank0Map() *GpioMapData {
	return NewGpioMapData(Bank0, DriveDefault, SlewDefault, HysteresisDefault, BackPowerNone)
}

func testBank1Map() *GpioMapData {
	return NewGpioMapData(Bank1, DriveDefault, SlewDefault, HysteresisDefault, BackPowerNone)
}

func TestStreamPushOrder(t *testing.T) {
	s := NewStream(testVendorData(t), testBank0Map())

	atoms := []Atom{
		NewLinuxDTBAtom(NewLinuxDTBName("revpi-test")),
		NewCustomAtom(NewCustomString("1")),
		NewGpioBank1Atom(testBank1Map()),
	}
	for _, a := range atoms {
		if err := s.Push(a); err != nil {
			t.Fatalf("Push(%s) failed: %v", a.Type(), err)
		}
	}

	if s.NumAtoms() != 5 {
		t.Fatalf("stream holds %d atoms, want 5", s.NumAtoms())
	}
	for i, a := range s.atoms {
		if a.count != uint16(i) {
			t.Errorf("atom %d has count %d", i, a.count)
		}
		if want := AtomType(i + 1); a.atype != want {
			t.Errorf("atom %d has type %s, want %s", i, a.atype, want)
		}
	}
}

// TestStreamTransitionTable drives every (state, incoming type) pair
// through Push and compares against the legal-order table.
func TestStreamTransitionTable(t *testing.T) {
	states := []AtomType{
		atomTypeNone,
		AtomTypeVendorInfo,
		AtomTypeGpioBank0Map,
		AtomTypeLinuxDTB,
		AtomTypeManufCustomData,
		AtomTypeGpioBank1Map,
	}
	incoming := []AtomType{
		AtomTypeVendorInfo,
		AtomTypeGpioBank0Map,
		AtomTypeLinuxDTB,
		AtomTypeManufCustomData,
		AtomTypeGpioBank1Map,
	}
	legal := map[AtomType]map[AtomType]bool{
		atomTypeNone:            {AtomTypeVendorInfo: true},
		AtomTypeVendorInfo:      {AtomTypeGpioBank0Map: true},
		AtomTypeGpioBank0Map:    {AtomTypeLinuxDTB: true, AtomTypeManufCustomData: true, AtomTypeGpioBank1Map: true},
		AtomTypeLinuxDTB:        {AtomTypeManufCustomData: true, AtomTypeGpioBank1Map: true},
		AtomTypeManufCustomData: {AtomTypeManufCustomData: true, AtomTypeGpioBank1Map: true},
		AtomTypeGpioBank1Map:    {},
	}

	for _, state := range states {
		for _, in := range incoming {
			s := &Stream{}
			if state != atomTypeNone {
				s.atoms = append(s.atoms, Atom{atype: state, data: NewCustomData(nil)})
			}
			before := len(s.atoms)

			err := s.Push(Atom{atype: in, data: NewCustomData(nil)})
			if legal[state][in] {
				if err != nil {
					t.Errorf("state %s: Push(%s) = %v, want accept", state, in, err)
				}
				continue
			}

			var orderErr *OrderError
			if !errors.As(err, &orderErr) {
				t.Errorf("state %s: Push(%s) = %v, want OrderError", state, in, err)
				continue
			}
			if orderErr.Atom != in || orderErr.Previous != state {
				t.Errorf("state %s: OrderError names %s after %s", state, orderErr.Atom, orderErr.Previous)
			}
			if len(s.atoms) != before {
				t.Errorf("state %s: rejected Push(%s) modified the stream", state, in)
			}
		}
	}
}

func TestStreamOrderErrorMessage(t *testing.T) {
	s := &Stream{}
	err := s.Push(Atom{atype: AtomTypeGpioBank0Map, data: NewCustomData(nil)})
	if err == nil {
		t.Fatal("Push on empty stream accepted a GPIO bank0 map")
	}
	msg := err.Error()
	for _, want := range []string{"GPIO bank0 map", "none", "vendor info"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestStreamCountOverflow(t *testing.T) {
	s := NewStream(testVendorData(t), testBank0Map())
	s.atoms = s.atoms[:0]
	s.atoms = append(s.atoms, Atom{atype: AtomTypeManufCustomData, data: NewCustomData(nil)})
	for len(s.atoms) < maxAtoms {
		s.atoms = append(s.atoms, s.atoms[0])
	}

	err := s.Push(NewCustomAtom(NewCustomData(nil)))
	var overflow *CountOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("Push on full stream = %v, want CountOverflowError", err)
	}
}

// Golden image: two-atom stream with an explicit UUID must be byte-exact
// and reproducible.
func TestStreamBytesGolden(t *testing.T) {
	const golden = "522d5069010002006a00000001000000" +
		"2d000000c8e05f0e68bb47926f42b110" +
		"4450e5679a0278000b0a4b554e425553" +
		"20476d62485465737420426f6172640f" +
		"0b020001002000000000000000000000" +
		"00000000000000000000000000000000" +
		"00000000000000ed6e"
	want, err := hex.DecodeString(golden)
	if err != nil {
		t.Fatal(err)
	}

	s := NewStream(testVendorData(t), testBank0Map())
	got := s.Bytes()

	if !bytes.Equal(got, want) {
		t.Errorf("image mismatch:\ngot  %X\nwant %X", got, want)
	}
	if !bytes.Equal(s.Bytes(), got) {
		t.Error("repeated serialization differs")
	}
}

func TestStreamHeader(t *testing.T) {
	s := NewStream(testVendorData(t), testBank0Map())
	if err := s.Push(NewLinuxDTBAtom(NewLinuxDTBName("revpi-test"))); err != nil {
		t.Fatal(err)
	}

	buf := s.Bytes()
	if len(buf) != s.Len() {
		t.Fatalf("Bytes() is %d bytes, Len() = %d", len(buf), s.Len())
	}
	if !bytes.Equal(buf[0:4], []byte{0x52, 0x2D, 0x50, 0x69}) {
		t.Errorf("signature = %X, want R-Pi", buf[0:4])
	}
	if buf[4] != 0x01 || buf[5] != 0x00 {
		t.Errorf("version/reserved = %02X %02X, want 01 00", buf[4], buf[5])
	}
	if got := binary.LittleEndian.Uint16(buf[6:8]); got != 3 {
		t.Errorf("numatoms = %d, want 3", got)
	}
	if got := binary.LittleEndian.Uint32(buf[8:12]); got != uint32(len(buf)) {
		t.Errorf("eeplen = %d, want %d", got, len(buf))
	}
}
