// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package eeprom

// Pin counts of the two BCM283x GPIO banks covered by the GPIO map atoms.
const (
	Bank0Gpios = 28
	Bank1Gpios = 18
)

// GpioBank selects which of the two GPIO map atoms a map describes. Bank 1
// pins keep their global numbering (28-45) at the API surface and are
// remapped internally.
type GpioBank int

const (
	Bank0 GpioBank = iota
	Bank1
)

func (b GpioBank) String() string {
	switch b {
	case Bank0:
		return "bank0"
	case Bank1:
		return "bank1"
	default:
		return "invalid"
	}
}

// size returns the number of pins in the bank.
func (b GpioBank) size() int {
	if b == Bank1 {
		return Bank1Gpios
	}
	return Bank0Gpios
}

// gpioRange returns the valid global GPIO index span of the bank.
func (b GpioBank) gpioRange() (min, max int) {
	if b == Bank1 {
		return Bank0Gpios, Bank0Gpios + Bank1Gpios - 1
	}
	return 0, Bank0Gpios - 1
}

// GpioFsel is a pin's function selection: plain input/output or one of the
// six alternate peripheral functions.
type GpioFsel int

const (
	FselInput GpioFsel = iota
	FselOutput
	FselAlt0
	FselAlt1
	FselAlt2
	FselAlt3
	FselAlt4
	FselAlt5
)

// fselCode maps a function selection to the 3-bit FSEL register code of the
// BCM2835 datasheet. The alternate functions are not sequential in the
// hardware encoding, so the mapping is an explicit table instead of the
// enum ordinal.
var fselCode = [...]uint8{
	FselInput:  0b000,
	FselOutput: 0b001,
	FselAlt0:   0b100,
	FselAlt1:   0b101,
	FselAlt2:   0b110,
	FselAlt3:   0b111,
	FselAlt4:   0b011,
	FselAlt5:   0b010,
}

// GpioPull is a pin's pull configuration.
// 0=leave at default, 1=pullup, 2=pulldown, 3=no pull.
type GpioPull int

const (
	PullDefault GpioPull = 0
	PullUp      GpioPull = 1
	PullDown    GpioPull = 2
	PullNone    GpioPull = 3
)

// GpioDrive is the per-bank drive strength.
// 0=leave at default, 1-8=drive*2mA, 9-15=reserved.
type GpioDrive int

const (
	DriveDefault GpioDrive = 0
	Drive2mA     GpioDrive = 1
	Drive4mA     GpioDrive = 2
	Drive6mA     GpioDrive = 3
	Drive8mA     GpioDrive = 4
	Drive10mA    GpioDrive = 5
	Drive12mA    GpioDrive = 6
	Drive14mA    GpioDrive = 7
	Drive16mA    GpioDrive = 8
)

// GpioSlew is the per-bank slew rate.
// 0=leave at default, 1=slew rate limiting, 2=no slew limiting, 3=reserved.
type GpioSlew int

const (
	SlewDefault      GpioSlew = 0
	SlewRateLimiting GpioSlew = 1
	SlewNoLimit      GpioSlew = 2
)

// GpioHysteresis is the per-bank input hysteresis.
// 0=leave at default, 1=disabled, 2=enabled, 3=reserved.
type GpioHysteresis int

const (
	HysteresisDefault GpioHysteresis = 0
	HysteresisDisable GpioHysteresis = 1
	HysteresisEnable  GpioHysteresis = 2
)

// GpioBackPower declares whether the board back powers the Pi.
// 0=no back power, 1=up to 1.3A, 2=up to 2A, 3=reserved.
// With BackPower2A the high current USB mode is automatically enabled.
type GpioBackPower int

const (
	BackPowerNone GpioBackPower = 0
	BackPower1A3  GpioBackPower = 1
	BackPower2A   GpioBackPower = 2
)

// GpioPin is the configuration of a single pin within a GPIO map.
//
// One byte per pin on the wire:
//
//	[2:0] func_sel  FSEL code per the BCM2835 datasheet
//	[4:3] reserved  set to 0
//	[6:5] pulltype  0=default, 1=pullup, 2=pulldown, 3=no pull
//	[  7] is_used   1=board uses this pin, 0=not connected
type GpioPin struct {
	Fsel GpioFsel
	Pull GpioPull
	Used bool
}

// pack encodes the pin into its wire byte. Inputs are validated enums, so
// packing cannot fail.
func (p GpioPin) pack() uint8 {
	var used uint8
	if p.Used {
		used = 1
	}
	return fselCode[p.Fsel]&0x07 | uint8(p.Pull)&0x03<<5 | used<<7
}

// GpioMapData is the payload of a GPIO map atom: a per-bank control byte, a
// back-power byte and one packed byte per pin in index order.
//
//	Byte 0: [3:0] drive, [5:4] slew, [7:6] hysteresis
//	Byte 1: [1:0] back_power, [7:2] reserved
//	Byte 2+n: packed pin n
type GpioMapData struct {
	bank       GpioBank
	drive      GpioDrive
	slew       GpioSlew
	hysteresis GpioHysteresis
	backPower  GpioBackPower
	gpios      []GpioPin
}

// NewGpioMapData allocates a map for the given bank with every pin left at
// its default (input, default pull, unused).
func NewGpioMapData(bank GpioBank, drive GpioDrive, slew GpioSlew, hysteresis GpioHysteresis, backPower GpioBackPower) *GpioMapData {
	return &GpioMapData{
		bank:       bank,
		drive:      drive,
		slew:       slew,
		hysteresis: hysteresis,
		backPower:  backPower,
		gpios:      make([]GpioPin, bank.size()),
	}
}

// Bank returns the bank the map describes.
func (m *GpioMapData) Bank() GpioBank { return m.bank }

// Set configures pin n. For bank 1 maps n is given in the global GPIO
// numbering (28-45) and remapped to the bank-local slot. Duplicate
// assignment is not detected here; the configuration layer checks that over
// the global index space.
func (m *GpioMapData) Set(n int, pin GpioPin) error {
	slot := n
	if m.bank == Bank1 {
		slot = n - Bank0Gpios
	}
	if slot < 0 || slot >= len(m.gpios) {
		return &GpioError{Gpio: n, Bank: m.bank}
	}
	m.gpios[slot] = pin
	return nil
}

// Len implements Payload.
func (m *GpioMapData) Len() int {
	// control byte + back-power byte + one byte per pin
	return 2 + len(m.gpios)
}

// AppendTo implements Payload.
func (m *GpioMapData) AppendTo(buf []byte) []byte {
	control := uint8(m.drive)&0x0f | uint8(m.slew)&0x03<<4 | uint8(m.hysteresis)&0x03<<6
	buf = append(buf, control)
	buf = append(buf, uint8(m.backPower)&0x03)
	for _, pin := range m.gpios {
		buf = append(buf, pin.pack())
	}
	return buf
}
