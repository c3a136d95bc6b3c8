// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// Classic LZSS format parameters: 12-bit window offsets, 4-bit match lengths.
// Encoder and decoder must agree on every value here; changing any of them
// changes the wire format.

// Token field widths.
const (
	// OffsetBits is the width of the window-offset field in a coded token.
	OffsetBits = 12

	// LengthBits is the width of the length field in a coded token.
	LengthBits = 4
)

// Dictionary and match bounds derived from the field widths.
const (
	// WindowSize is the sliding dictionary capacity in bytes.
	WindowSize = 1 << OffsetBits

	// MaxUncoded is the longest match still cheaper to emit as literals.
	// Matches of this length or shorter become uncoded tokens.
	MaxUncoded = 2

	// MaxCoded is the longest representable match: the length field counts
	// up from the shortest worthwhile coded match (MaxUncoded + 1).
	MaxCoded = (1 << LengthBits) + MaxUncoded

	// FillByte is the sentinel the window holds before any input is
	// processed. Both directions start from the same known dictionary.
	FillByte = ' '
)
