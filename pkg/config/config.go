// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

// Package config loads and validates RevPi HAT EEPROM board descriptions.
//
// A description is a JSON document naming the board's identity (vendor and
// product strings, product id/revision/version, device tree overlay) and
// its GPIO bank configuration. The GPIO banks may come from a shared
// template instead of being spelled out per board. Parse resolves the
// template, validates everything and returns a Config ready for Build.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Config is a fully resolved, validated board description.
//
// Serial, EDate and Mac may be absent in the file; the CLI supplies or
// overrides them before Build is called.
type Config struct {
	// Format version of the EEPROM layout. Only version 1 is supported.
	Version uint16 `json:"version"`
	// Version of the EEPROM content itself (custom atom 6).
	EepromDataVersion uint16 `json:"eeprom_data_version"`
	// Vendor string, at most 255 bytes.
	VStr string `json:"vstr"`
	// Product string, at most 255 bytes.
	PStr string `json:"pstr"`
	// Product ID.
	Pid uint16 `json:"pid"`
	// Product revision.
	PRev uint16 `json:"prev"`
	// Customer visible product version multiplied by 100.
	PVer uint16 `json:"pver"`
	// Device tree overlay name.
	DTStr string `json:"dtstr"`
	// Board serial number, also printed on the casing.
	Serial *uint32 `json:"serial,omitempty"`
	// End-of-line test date.
	EDate *Date `json:"edate,omitempty"`
	// First MAC address of the device.
	Mac *MacAddr `json:"mac,omitempty"`
	// Explicit board UUID. When absent the UUID is derived from the
	// identity fields.
	UUID *uuid.UUID `json:"uuid,omitempty"`
	// One or two GPIO banks.
	GpioBanks []GpioBank `json:"gpiobanks"`
}

// rawConfig is the on-disk form of a Config. It additionally allows an
// "include" directive pulling the GPIO banks from a template; in that case
// the gpiobanks attribute must be absent.
type rawConfig struct {
	Version           uint16           `json:"version"`
	EepromDataVersion uint16           `json:"eeprom_data_version"`
	VStr              string           `json:"vstr"`
	PStr              string           `json:"pstr"`
	Pid               uint16           `json:"pid"`
	PRev              uint16           `json:"prev"`
	PVer              uint16           `json:"pver"`
	DTStr             string           `json:"dtstr"`
	Serial            *uint32          `json:"serial,omitempty"`
	EDate             *Date            `json:"edate,omitempty"`
	Mac               *MacAddr         `json:"mac,omitempty"`
	UUID              *uuid.UUID       `json:"uuid,omitempty"`
	GpioBanks         []GpioBank       `json:"gpiobanks,omitempty"`
	Include           *TemplateInclude `json:"include,omitempty"`
}

// Template is a shared GPIO bank definition that board descriptions can
// include. Its version fields must match the including description.
type Template struct {
	Version           uint16     `json:"version"`
	EepromDataVersion uint16     `json:"eeprom_data_version"`
	GpioBanks         []GpioBank `json:"gpiobanks"`
}

// TemplateInclude names a template: either a file name resolved in the
// template directory (JSON string) or an inline Template (JSON object,
// meant for tests).
type TemplateInclude struct {
	Filename string
	Object   *Template
}

func (t *TemplateInclude) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &ValidationError{Msg: "empty template include"}
	}
	switch trimmed[0] {
	case '"':
		return json.Unmarshal(data, &t.Filename)
	case '{':
		t.Object = &Template{}
		return unmarshalStrict(data, t.Object)
	default:
		return &ValidationError{Msg: "template include must be a file name or a template object"}
	}
}

func (t TemplateInclude) MarshalJSON() ([]byte, error) {
	if t.Object != nil {
		return json.Marshal(t.Object)
	}
	return json.Marshal(t.Filename)
}

// unmarshalStrict decodes JSON rejecting unknown fields, so typos in a
// board description fail loudly instead of being dropped.
func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

// Parse decodes a board description, resolves its template include against
// templateDir if present, and validates the result. templateDir is only
// touched when the description actually uses an include.
func Parse(data []byte, templateDir string) (*Config, error) {
	var raw rawConfig
	if err := unmarshalStrict(data, &raw); err != nil {
		return nil, err
	}
	return resolve(&raw, templateDir)
}

func resolve(raw *rawConfig, templateDir string) (*Config, error) {
	cfg := &Config{
		Version:           raw.Version,
		EepromDataVersion: raw.EepromDataVersion,
		VStr:              raw.VStr,
		PStr:              raw.PStr,
		Pid:               raw.Pid,
		PRev:              raw.PRev,
		PVer:              raw.PVer,
		DTStr:             raw.DTStr,
		Serial:            raw.Serial,
		EDate:             raw.EDate,
		Mac:               raw.Mac,
		UUID:              raw.UUID,
	}

	switch {
	case raw.Include == nil:
		if raw.GpioBanks == nil {
			return nil, &ValidationError{Msg: `definition requires a "gpiobanks" attribute`}
		}
		cfg.GpioBanks = raw.GpioBanks
	case raw.GpioBanks != nil:
		return nil, &ValidationError{Msg: "all fields of the template are overridden, template is useless"}
	default:
		tpl := raw.Include.Object
		if tpl == nil {
			loaded, err := loadTemplate(templateDir, raw.Include.Filename)
			if err != nil {
				return nil, err
			}
			tpl = loaded
		}
		if tpl.Version != raw.Version || tpl.EepromDataVersion != raw.EepromDataVersion {
			return nil, &ValidationError{Msg: "version fields of definition and template have to match"}
		}
		cfg.GpioBanks = tpl.GpioBanks
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTemplate(templateDir, name string) (*Template, error) {
	path := filepath.Join(templateDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read template %s: %w", path, err)
	}
	var tpl Template
	if err := unmarshalStrict(data, &tpl); err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", path, err)
	}
	return &tpl, nil
}

// Validate checks the whole description: format version, string lengths,
// bank count and every bank's pin list.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ValidationError{Msg: fmt.Sprintf("unsupported format version %d", c.Version)}
	}
	if len(c.VStr) > 255 {
		return &ValidationError{Msg: fmt.Sprintf("vendor string too long: %d (max: 255) bytes", len(c.VStr))}
	}
	if len(c.PStr) > 255 {
		return &ValidationError{Msg: fmt.Sprintf("product string too long: %d (max: 255) bytes", len(c.PStr))}
	}
	if len(c.GpioBanks) == 0 || len(c.GpioBanks) > 2 {
		return &ValidationError{Msg: fmt.Sprintf("unsupported number of gpio banks: %d (min: 1; max: 2)", len(c.GpioBanks))}
	}
	for i := range c.GpioBanks {
		if err := c.GpioBanks[i].validate(bankNumber(i)); err != nil {
			return err
		}
	}
	return nil
}
