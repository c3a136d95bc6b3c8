// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import "github.com/chronos-tachyon/assert"

// listSearcher chains window positions bucketed by their first byte: 256
// exact buckets, so unlike the hash variant no candidate can be a false
// positive on its key byte. Chains are FIFO, oldest position first.
type listSearcher struct {
	heads   [256]ref        // one chain head per possible first byte
	next    [WindowSize]ref // per-position chain links
	uncoded [MaxCoded]byte  // flat copy of the lookahead for one search
}

// init chains every position of the uniform FillByte window under the
// FillByte bucket, in position order.
func (s *listSearcher) init(b *windowBuffers) {
	for i := range WindowSize - 1 {
		s.next[i] = ref(i + 1)
	}
	s.next[WindowSize-1] = nilRef

	for i := range s.heads {
		s.heads[i] = nilRef
	}
	s.heads[b.window[0]] = 0
}

// findMatch walks the chain for the lookahead's first byte. The bucket
// guarantees that byte matches, so extension starts from the second.
func (s *listSearcher) findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match {
	var best match

	if uncodedLen <= MaxUncoded {
		return best
	}

	b.unwrapLookahead(&s.uncoded, uncodedHead, uncodedLen)

	i := s.heads[s.uncoded[0]]
	for i != nilRef {
		j := 1
		for b.window[wrap(int(i)+j, WindowSize)] == s.uncoded[j] {
			j++
			if j == uncodedLen {
				break
			}
		}

		if j > best.length {
			best.length = j
			best.offset = int(i)
		}
		if j == uncodedLen {
			break
		}

		i = s.next[i]
	}

	return best
}

// addChar appends charIndex to the tail of the chain for its window byte.
func (s *listSearcher) addChar(b *windowBuffers, charIndex int) {
	s.next[charIndex] = nilRef

	c := b.window[charIndex]
	if s.heads[c] == nilRef {
		s.heads[c] = ref(charIndex)
		return
	}

	i := s.heads[c]
	for s.next[i] != nilRef {
		i = s.next[i]
	}
	s.next[i] = ref(charIndex)
}

// removeChar unlinks charIndex from the chain for its window byte.
func (s *listSearcher) removeChar(b *windowBuffers, charIndex int) {
	nextIndex := s.next[charIndex]
	s.next[charIndex] = nilRef

	c := b.window[charIndex]
	if s.heads[c] == ref(charIndex) {
		s.heads[c] = nextIndex
		return
	}

	i := s.heads[c]
	assert.Assertf(i != nilRef, "list bucket %#02x is empty removing position %d", c, charIndex)
	for s.next[i] != ref(charIndex) {
		i = s.next[i]
		assert.Assertf(i != nilRef, "list bucket %#02x chain lost position %d", c, charIndex)
	}
	s.next[i] = nextIndex
}

// replaceChar rewrites one window byte. Only the chain entry for charIndex
// itself is keyed on the changed byte, so it alone moves buckets.
func (s *listSearcher) replaceChar(b *windowBuffers, charIndex int, replacement byte) {
	s.removeChar(b, charIndex)
	b.window[charIndex] = replacement
	s.addChar(b, charIndex)
}
