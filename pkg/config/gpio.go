// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package config

import (
	"encoding/json"
	"fmt"

	"github.com/RevolutionPi/revpi-hat-eeprom/pkg/eeprom"
)

// Drive is the per-bank drive strength in its configuration file form
// ("default", "2mA" ... "16mA").
type Drive eeprom.GpioDrive

// Slew is the per-bank slew rate ("default", "rate_limiting", "no_limit").
type Slew eeprom.GpioSlew

// Hysteresis is the per-bank input hysteresis ("default", "disable",
// "enable").
type Hysteresis eeprom.GpioHysteresis

// Fsel is a pin function selection ("input", "output", "alt0" ... "alt5").
type Fsel eeprom.GpioFsel

// Pull is a pin pull configuration ("default", "up", "down", "none").
type Pull eeprom.GpioPull

var driveNames = map[Drive]string{
	Drive(eeprom.DriveDefault): "default",
	Drive(eeprom.Drive2mA):     "2mA",
	Drive(eeprom.Drive4mA):     "4mA",
	Drive(eeprom.Drive6mA):     "6mA",
	Drive(eeprom.Drive8mA):     "8mA",
	Drive(eeprom.Drive10mA):    "10mA",
	Drive(eeprom.Drive12mA):    "12mA",
	Drive(eeprom.Drive14mA):    "14mA",
	Drive(eeprom.Drive16mA):    "16mA",
}

var slewNames = map[Slew]string{
	Slew(eeprom.SlewDefault):      "default",
	Slew(eeprom.SlewRateLimiting): "rate_limiting",
	Slew(eeprom.SlewNoLimit):      "no_limit",
}

var hysteresisNames = map[Hysteresis]string{
	Hysteresis(eeprom.HysteresisDefault): "default",
	Hysteresis(eeprom.HysteresisDisable): "disable",
	Hysteresis(eeprom.HysteresisEnable):  "enable",
}

var fselNames = map[Fsel]string{
	Fsel(eeprom.FselInput):  "input",
	Fsel(eeprom.FselOutput): "output",
	Fsel(eeprom.FselAlt0):   "alt0",
	Fsel(eeprom.FselAlt1):   "alt1",
	Fsel(eeprom.FselAlt2):   "alt2",
	Fsel(eeprom.FselAlt3):   "alt3",
	Fsel(eeprom.FselAlt4):   "alt4",
	Fsel(eeprom.FselAlt5):   "alt5",
}

var pullNames = map[Pull]string{
	Pull(eeprom.PullDefault): "default",
	Pull(eeprom.PullUp):      "up",
	Pull(eeprom.PullDown):    "down",
	Pull(eeprom.PullNone):    "none",
}

func invert[T comparable](names map[T]string) map[string]T {
	values := make(map[string]T, len(names))
	for v, name := range names {
		values[name] = v
	}
	return values
}

var (
	driveValues      = invert(driveNames)
	slewValues       = invert(slewNames)
	hysteresisValues = invert(hysteresisNames)
	fselValues       = invert(fselNames)
	pullValues       = invert(pullNames)
)

func unmarshalEnum[T comparable](data []byte, values map[string]T, what string) (T, error) {
	var zero T
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, err
	}
	v, ok := values[s]
	if !ok {
		return zero, &ValidationError{Msg: fmt.Sprintf("unknown %s value %q", what, s)}
	}
	return v, nil
}

func (d *Drive) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, driveValues, "drive")
	*d = v
	return err
}

func (d Drive) MarshalJSON() ([]byte, error) { return json.Marshal(driveNames[d]) }

func (s *Slew) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, slewValues, "slew")
	*s = v
	return err
}

func (s Slew) MarshalJSON() ([]byte, error) { return json.Marshal(slewNames[s]) }

func (h *Hysteresis) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, hysteresisValues, "hysteresis")
	*h = v
	return err
}

func (h Hysteresis) MarshalJSON() ([]byte, error) { return json.Marshal(hysteresisNames[h]) }

func (f *Fsel) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, fselValues, "fsel")
	*f = v
	return err
}

func (f Fsel) MarshalJSON() ([]byte, error) { return json.Marshal(fselNames[f]) }

func (p *Pull) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, pullValues, "pull")
	*p = v
	return err
}

func (p Pull) MarshalJSON() ([]byte, error) { return json.Marshal(pullNames[p]) }

// GpioPin is one configured pin. Gpio uses the global numbering for both
// banks. The comment field carries documentation for the board description
// and does not reach the EEPROM image.
type GpioPin struct {
	Gpio    int      `json:"gpio"`
	Fsel    Fsel     `json:"fsel"`
	Pull    Pull     `json:"pull"`
	Comment []string `json:"comment,omitempty"`
}

// GpioBank is one bank's configuration: bank-wide electrical settings plus
// the pins the board actually uses. Unlisted pins stay at their defaults.
type GpioBank struct {
	Drive      Drive      `json:"drive"`
	Slew       Slew       `json:"slew"`
	Hysteresis Hysteresis `json:"hysteresis"`
	Gpios      []GpioPin  `json:"gpios"`
}

func bankNumber(i int) eeprom.GpioBank {
	if i == 1 {
		return eeprom.Bank1
	}
	return eeprom.Bank0
}

// validate checks every pin of the bank: gpios 0 and 1 are reserved for
// the HAT EEPROM itself, each index must lie in the bank's span and may
// appear only once.
func (b *GpioBank) validate(bank eeprom.GpioBank) error {
	seen := make(map[int]bool, len(b.Gpios))
	min, max := bankRange(bank)
	for _, pin := range b.Gpios {
		if pin.Gpio == 0 || pin.Gpio == 1 {
			return &ReservedGpioError{Gpio: pin.Gpio}
		}
		if pin.Gpio < min || pin.Gpio > max {
			return &GpioRangeError{Gpio: pin.Gpio, Bank: bank, Min: min, Max: max}
		}
		if seen[pin.Gpio] {
			return &DuplicateGpioError{Gpio: pin.Gpio}
		}
		seen[pin.Gpio] = true
	}
	return nil
}

func bankRange(bank eeprom.GpioBank) (min, max int) {
	if bank == eeprom.Bank1 {
		return eeprom.Bank0Gpios, eeprom.Bank0Gpios + eeprom.Bank1Gpios - 1
	}
	// gpios 0 and 1 are checked separately so the reserved-index error
	// stays distinct from the range error.
	return 0, eeprom.Bank0Gpios - 1
}

// toGpioMap converts the bank into its EEPROM atom payload. The bank must
// already be validated; only the codec's own bound checks remain.
func (b *GpioBank) toGpioMap(bank eeprom.GpioBank) (*eeprom.GpioMapData, error) {
	m := eeprom.NewGpioMapData(bank,
		eeprom.GpioDrive(b.Drive),
		eeprom.GpioSlew(b.Slew),
		eeprom.GpioHysteresis(b.Hysteresis),
		eeprom.BackPowerNone)
	for _, pin := range b.Gpios {
		err := m.Set(pin.Gpio, eeprom.GpioPin{
			Fsel: eeprom.GpioFsel(pin.Fsel),
			Pull: eeprom.GpioPull(pin.Pull),
			Used: true,
		})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
