// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package cmd

import "strconv"

// parsePrefixedUint parses an unsigned integer with an optional base prefix.
// 0b selects binary, 0o octal and 0x hexadecimal; anything else is decimal,
// including numbers with leading zeros.
func parsePrefixedUint(s string, bitSize int) (uint64, error) {
	base := 10
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			base, s = 2, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'x', 'X':
			base, s = 16, s[2:]
		}
	}
	return strconv.ParseUint(s, base, bitSize)
}
