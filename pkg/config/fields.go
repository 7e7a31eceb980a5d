// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date in ISO-8601 (YYYY-MM-DD) form, used for the
// end-of-line test date.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Today returns the current local date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// MacAddr is an EUI-48 MAC address.
type MacAddr struct {
	hw net.HardwareAddr
}

// ParseMac parses a MAC address in any form net.ParseMAC accepts, but
// requires the 6-byte EUI-48 length.
func ParseMac(s string) (MacAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MacAddr{}, err
	}
	if len(hw) != 6 {
		return MacAddr{}, fmt.Errorf("invalid MAC address length: %d bytes (want 6)", len(hw))
	}
	return MacAddr{hw: hw}, nil
}

// String formats the address as colon-separated uppercase hex, matching
// the form printed on device labels.
func (m MacAddr) String() string {
	parts := make([]string, len(m.hw))
	for i, b := range m.hw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

func (m *MacAddr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMac(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MacAddr) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}
