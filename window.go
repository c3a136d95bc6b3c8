// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// ref links one window position to another inside a finder's index
// structures. int16 keeps the link arrays compact; every WindowSize
// position fits with room for the sentinels below.
type ref int16

const (
	// nilRef marks an absent link: no child, end of chain, not indexed.
	nilRef ref = -1

	// rootRef marks the parent link of the tree root. Keeping it distinct
	// from nilRef separates "position is the root" from "position is not
	// in the tree".
	rootRef ref = -2
)

// windowBuffers couples the circular dictionary with the circular lookahead
// of not-yet-coded input. The encoder slides both in lockstep; the decoder
// reuses the lookahead as its back-reference staging area.
type windowBuffers struct {
	// window is the circular dictionary of the most recent WindowSize
	// committed bytes.
	window [WindowSize]byte
	// lookahead is the circular buffer of up to MaxCoded pending bytes.
	lookahead [MaxCoded]byte
}

// reset restores the pre-stream state: a dictionary uniformly filled with
// FillByte. Encoder and decoder must start from the same fill or early
// back-references into the unwritten window would disagree.
func (b *windowBuffers) reset() {
	for i := range b.window {
		b.window[i] = FillByte
	}
}

// unwrapLookahead copies n bytes of the circular lookahead starting at head
// into dst, giving the finders a flat prefix to compare against.
func (b *windowBuffers) unwrapLookahead(dst *[MaxCoded]byte, head, n int) {
	for i := range n {
		dst[i] = b.lookahead[wrap(head+i, MaxCoded)]
	}
}

// wrap maps any integer onto a circular buffer index in [0, limit). The
// double modulo keeps results non-negative for the negative values produced
// by backward offset arithmetic.
func wrap(value, limit int) int {
	return ((value % limit) + limit) % limit
}
