// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package cmd

import "testing"

func TestParsePrefixedUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"42", 42},
		{"010", 10},
		{"0b101", 5},
		{"0B101", 5},
		{"0o17", 15},
		{"0O17", 15},
		{"0x2a", 42},
		{"0X2A", 42},
		{"4294967295", 4294967295},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePrefixedUint(tc.in, 32)
			if err != nil {
				t.Fatalf("parsePrefixedUint(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("parsePrefixedUint(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePrefixedUintErrors(t *testing.T) {
	for _, in := range []string{"", "0x", "0b", "0b2", "0o8", "0xfg", "-1", "abc", "4294967296"} {
		t.Run(in, func(t *testing.T) {
			if _, err := parsePrefixedUint(in, 32); err == nil {
				t.Errorf("parsePrefixedUint(%q) accepted invalid input", in)
			}
		})
	}
}
