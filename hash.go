// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import "github.com/chronos-tachyon/assert"

// hashSize is the number of hash buckets. WindowSize>>2 follows the sizing
// of the gzip family of LZ77 hashes.
const hashSize = WindowSize >> 2

// hashKey folds the MaxUncoded+1 byte string starting at offset in buf into
// a bucket index, using the shift-and-xor recurrence from Sadakane and
// Imai's gzip study. buf is circular with the given length.
func hashKey(buf []byte, offset, bufLen int) int {
	key := 0
	for i := range MaxUncoded + 1 {
		key = (key << 5) ^ int(buf[wrap(offset+i, bufLen)])
		key %= hashSize
	}
	return key
}

// hashSearcher chains window positions bucketed by the hash of their first
// MaxUncoded+1 bytes. Chains are FIFO: insertion appends at the tail, so a
// search tries older positions first and the earliest position wins length
// ties, matching the brute force scan order.
type hashSearcher struct {
	head    [hashSize]ref   // bucket heads
	next    [WindowSize]ref // per-position chain links
	uncoded [MaxCoded]byte  // flat copy of the lookahead for one search
}

// init builds the one chain the uniform FillByte window collapses to: every
// position hashes to the same key, linked in position order.
func (s *hashSearcher) init(b *windowBuffers) {
	for i := range WindowSize - 1 {
		s.next[i] = ref(i + 1)
	}
	s.next[WindowSize-1] = nilRef

	for i := range s.head {
		s.head[i] = nilRef
	}
	s.head[hashKey(b.window[:], 0, WindowSize)] = 0
}

// findMatch walks the chain for the lookahead's key. Only the first byte of
// a candidate is rechecked before extending; the rest of the key is trusted
// to the bucket. A colliding chain entry can therefore only surface as a
// match of MaxUncoded or less, which the encoder emits as literals anyway.
func (s *hashSearcher) findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match {
	var best match

	if uncodedLen <= MaxUncoded {
		return best
	}

	b.unwrapLookahead(&s.uncoded, uncodedHead, uncodedLen)

	i := s.head[hashKey(s.uncoded[:], 0, MaxCoded)]
	for i != nilRef {
		if b.window[i] == s.uncoded[0] {
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
		}

		i = s.next[i]
	}

	return best
}

// addString appends the string starting at charIndex to the tail of its
// bucket's chain.
func (s *hashSearcher) addString(b *windowBuffers, charIndex int) {
	s.next[charIndex] = nilRef

	key := hashKey(b.window[:], charIndex, WindowSize)
	if s.head[key] == nilRef {
		s.head[key] = ref(charIndex)
		return
	}

	i := s.head[key]
	for s.next[i] != nilRef {
		i = s.next[i]
	}
	s.next[i] = ref(charIndex)
}

// removeString unlinks the string starting at charIndex from its bucket's
// chain. Every window position is always indexed, so the position must be
// found under its current key.
func (s *hashSearcher) removeString(b *windowBuffers, charIndex int) {
	nextIndex := s.next[charIndex]
	s.next[charIndex] = nilRef

	key := hashKey(b.window[:], charIndex, WindowSize)
	if s.head[key] == ref(charIndex) {
		s.head[key] = nextIndex
		return
	}

	i := s.head[key]
	assert.Assertf(i != nilRef, "hash bucket %d is empty removing position %d", key, charIndex)
	for s.next[i] != ref(charIndex) {
		i = s.next[i]
		assert.Assertf(i != nilRef, "hash bucket %d chain lost position %d", key, charIndex)
	}
	s.next[i] = nextIndex
}

// replaceChar rewrites one window byte. The strings hashed over the changed
// position (the MaxUncoded+1 strings starting at charIndex-MaxUncoded
// through charIndex) are unlinked under their old keys first and re-added
// under the new ones after the store.
func (s *hashSearcher) replaceChar(b *windowBuffers, charIndex int, replacement byte) {
	firstIndex := wrap(charIndex-MaxUncoded, WindowSize)

	for i := range MaxUncoded + 1 {
		s.removeString(b, wrap(firstIndex+i, WindowSize))
	}

	b.window[charIndex] = replacement

	for i := range MaxUncoded + 1 {
		s.addString(b, wrap(firstIndex+i, WindowSize))
	}
}
