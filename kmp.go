// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// kmpSearcher scans the window with Knuth-Morris-Pratt shifts instead of
// maintaining an index. The fallback table lets the scan skip alignments
// that cannot begin a full match, which also lets it skip alignments
// holding a longer partial match: findMatch is a heuristic that trades a
// little ratio for index-free sliding.
type kmpSearcher struct {
	table   [MaxCoded]int  // KMP partial-match fallback table
	uncoded [MaxCoded]byte // flat copy of the lookahead for one search
}

func (s *kmpSearcher) init(_ *windowBuffers) {}

// fillTable builds the fallback table over the flattened lookahead: after a
// mismatch at pattern position i, matching resumes at table[i].
func (s *kmpSearcher) fillTable() {
	s.table[0] = -1
	s.table[1] = 0

	i, j := 2, 0
	for i < MaxCoded {
		switch {
		case s.uncoded[i-1] == s.uncoded[j]:
			j++
			s.table[i] = j
			i++
		case j > 0:
			j = s.table[j]
		default:
			s.table[i] = 0
			i++
		}
	}
}

// findMatch slides the lookahead across the window left to right, starting
// at the oldest byte. Partial matches are recorded at mismatch points; the
// scan ends at the first full-length match or after one pass.
func (s *kmpSearcher) findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match {
	var best match

	if uncodedLen <= MaxUncoded {
		return best
	}

	b.unwrapLookahead(&s.uncoded, uncodedHead, uncodedLen)
	s.fillTable()

	m, i := 0, 0
	for m < WindowSize {
		if s.uncoded[i] == b.window[wrap(m+i+windowHead, WindowSize)] {
			i++
			if i == uncodedLen {
				best.length = uncodedLen
				best.offset = wrap(m+windowHead, WindowSize)
				break
			}
			continue
		}

		if i > best.length {
			best.length = i
			best.offset = wrap(m+windowHead, WindowSize)
		}

		m += i - s.table[i]
		if s.table[i] > 0 {
			i = s.table[i]
		} else {
			i = 0
		}
	}

	return best
}

func (s *kmpSearcher) replaceChar(b *windowBuffers, charIndex int, replacement byte) {
	b.window[charIndex] = replacement
}
