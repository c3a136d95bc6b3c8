// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// bruteSearcher is the exhaustive strategy: every window position is tried
// as a match start. It maintains no index, so replaceChar is a plain store,
// and it serves as the correctness baseline for the indexed finders.
type bruteSearcher struct {
	uncoded [MaxCoded]byte // flat copy of the lookahead for one search
}

func (s *bruteSearcher) init(_ *windowBuffers) {}

// findMatch scans the window oldest position first, wrapping once around,
// and keeps the earliest candidate of the greatest length. The scan stops
// early when a match covers the whole lookahead.
func (s *bruteSearcher) findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match {
	var best match

	if uncodedLen <= MaxUncoded {
		// Too short to encode as anything but literals.
		return best
	}

	b.unwrapLookahead(&s.uncoded, uncodedHead, uncodedLen)

	i := windowHead
	for {
		if b.window[i] == s.uncoded[0] {
			j := 1
			for s.uncoded[j] == b.window[wrap(i+j, WindowSize)] {
				j++
				if j == uncodedLen {
					break
				}
			}

			if j > best.length {
				best.length = j
				best.offset = i
			}
			if j == uncodedLen {
				break
			}
		}

		i = wrap(i+1, WindowSize)
		if i == windowHead {
			break
		}
	}

	return best
}

func (s *bruteSearcher) replaceChar(b *windowBuffers, charIndex int, replacement byte) {
	b.window[charIndex] = replacement
}
