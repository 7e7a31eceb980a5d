// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package config

import (
	"strconv"

	"github.com/RevolutionPi/revpi-hat-eeprom/pkg/eeprom"
	"github.com/google/uuid"
)

// Build assembles the EEPROM atom stream from a validated description.
// Serial, EDate and Mac must already be resolved (from the file or the
// command line).
//
// The stream layout is fixed: vendor info, bank 0 GPIO map, the device
// tree overlay name, the seven RevPi custom atoms and, if configured, the
// bank 1 GPIO map.
func Build(cfg *Config) (*eeprom.Stream, error) {
	if cfg.Serial == nil {
		return nil, &ValidationError{Msg: "missing serial in configuration"}
	}
	if cfg.EDate == nil {
		return nil, &ValidationError{Msg: "missing end test date in configuration"}
	}
	if cfg.Mac == nil {
		return nil, &ValidationError{Msg: "missing mac address in configuration"}
	}

	id := boardUUID(cfg)
	vendor, err := eeprom.NewVendorData(id, cfg.Pid, cfg.PVer, cfg.VStr, cfg.PStr)
	if err != nil {
		return nil, err
	}

	bank0, err := cfg.GpioBanks[0].toGpioMap(eeprom.Bank0)
	if err != nil {
		return nil, err
	}

	stream := eeprom.NewStream(vendor, bank0)

	if err := stream.Push(eeprom.NewLinuxDTBAtom(eeprom.NewLinuxDTBName(cfg.DTStr))); err != nil {
		return nil, err
	}

	// Custom atoms 0-6: format version, serial, product revision, end
	// test date, lot number placeholder, MAC address, EEPROM data
	// version. All ASCII, one atom each.
	custom := []string{
		strconv.FormatUint(uint64(cfg.Version), 10),
		strconv.FormatUint(uint64(*cfg.Serial), 10),
		strconv.FormatUint(uint64(cfg.PRev), 10),
		cfg.EDate.String(),
		"0",
		cfg.Mac.String(),
		strconv.FormatUint(uint64(cfg.EepromDataVersion), 10),
	}
	for _, s := range custom {
		if err := stream.Push(eeprom.NewCustomAtom(eeprom.NewCustomString(s))); err != nil {
			return nil, err
		}
	}

	if len(cfg.GpioBanks) > 1 {
		bank1, err := cfg.GpioBanks[1].toGpioMap(eeprom.Bank1)
		if err != nil {
			return nil, err
		}
		if err := stream.Push(eeprom.NewGpioBank1Atom(bank1)); err != nil {
			return nil, err
		}
	}

	return stream, nil
}

// boardUUID returns the configured UUID or derives one from the board
// identity. An explicit all-zero UUID counts as absent.
func boardUUID(cfg *Config) uuid.UUID {
	if cfg.UUID != nil && *cfg.UUID != (uuid.UUID{}) {
		return *cfg.UUID
	}
	return eeprom.DeriveUUID(cfg.Pid, cfg.PVer, cfg.PRev, *cfg.Serial)
}
