// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// stageBackRef copies length window bytes starting at offset into the
// lookahead, which serves the decoder as a staging area. Staging before
// commitBackRef matters when the source range wraps into the region about
// to be overwritten at the write head: reading and writing the window in
// one pass would corrupt the tail of the source.
func (b *windowBuffers) stageBackRef(offset, length int) {
	for i := range length {
		b.lookahead[i] = b.window[wrap(offset+i, WindowSize)]
	}
}

// commitBackRef stores length staged bytes into the window at nextChar and
// returns the advanced write head.
func (b *windowBuffers) commitBackRef(nextChar, length int) int {
	for i := range length {
		b.window[wrap(nextChar+i, WindowSize)] = b.lookahead[i]
	}
	return wrap(nextChar+length, WindowSize)
}
