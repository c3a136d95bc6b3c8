// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import "github.com/chronos-tachyon/assert"

// treeNode links one window position into the search tree. All links are
// window positions; nilRef means no child or not in the tree, rootRef marks
// the parent of the root.
type treeNode struct {
	left   ref
	right  ref
	parent ref
}

// treeSearcher keeps a binary tree over window positions, ordered by the
// full MaxCoded-byte string starting at each position (smaller strings to
// the left). Duplicate strings are not chained: inserting a string already
// in the tree promotes the newer position into the older one's node, so the
// tree holds exactly one node per distinct indexed string. That keeps the
// depth bounded on highly repetitive input, where chained finders degrade
// to long walks.
type treeSearcher struct {
	nodes   [WindowSize]treeNode
	root    ref
	uncoded [MaxCoded]byte // flat copy of the lookahead for one search
}

// init seeds the tree with a single node. In the uniform FillByte window
// every string is identical, so one position represents them all; the
// newest whose string lies ahead of the first slide is used. Remaining
// positions enter the tree as replaceChar re-indexes them.
func (s *treeSearcher) init(_ *windowBuffers) {
	for i := range s.nodes {
		s.clearNode(ref(i))
	}

	s.root = ref(WindowSize - MaxCoded - 1)
	s.nodes[s.root].parent = rootRef
}

// findMatch descends from the root comparing the lookahead against each
// node's string. A first-byte mismatch picks the branch directly; on a
// first-byte match the common prefix is extended until the ordering byte is
// found, and the prefix length is a match candidate.
func (s *treeSearcher) findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match {
	var best match

	if uncodedLen <= MaxUncoded {
		return best
	}

	b.unwrapLookahead(&s.uncoded, uncodedHead, uncodedLen)

	i := s.root
	for i != nilRef {
		compare := int(b.window[i]) - int(s.uncoded[0])
		j := 0

		if compare == 0 {
			j = 1
			compare = int(b.window[wrap(int(i)+j, WindowSize)]) - int(s.uncoded[j])
			for compare == 0 {
				j++
				if j == uncodedLen {
					break
				}
				compare = int(b.window[wrap(int(i)+j, WindowSize)]) - int(s.uncoded[j])
			}

			if j > best.length {
				best.length = j
				best.offset = int(i)
			}
		}

		if j == uncodedLen {
			break
		}

		if compare > 0 {
			i = s.nodes[i].left
		} else {
			i = s.nodes[i].right
		}
	}

	return best
}

// compareStrings orders the MaxCoded-byte window strings starting at index1
// and index2, returning the first nonzero byte difference.
func (s *treeSearcher) compareStrings(b *windowBuffers, index1, index2 int) int {
	for offset := range MaxCoded {
		d := int(b.window[wrap(index1+offset, WindowSize)]) -
			int(b.window[wrap(index2+offset, WindowSize)])
		if d != 0 {
			return d
		}
	}
	return 0
}

// clearNode detaches index from the tree bookkeeping entirely.
func (s *treeSearcher) clearNode(index ref) {
	s.nodes[index] = treeNode{left: nilRef, right: nilRef, parent: nilRef}
}

// fixChildren points the children of a repositioned node back at it.
func (s *treeSearcher) fixChildren(index ref) {
	if s.nodes[index].left != nilRef {
		s.nodes[s.nodes[index].left].parent = index
	}
	if s.nodes[index].right != nilRef {
		s.nodes[s.nodes[index].right].parent = index
	}
}

// addString inserts the string starting at charIndex. If an identical
// string is already present, the newer position takes over the older node
// and the older position drops out of the tree until its window bytes next
// change.
func (s *treeSearcher) addString(b *windowBuffers, charIndex int) {
	assert.Assertf(s.nodes[charIndex].parent == nilRef,
		"tree insert of position %d which is already linked", charIndex)

	if s.root == nilRef {
		// Every node was deleted, which happens once the whole window
		// repeats a single string and the last representative expires.
		s.nodes[charIndex] = treeNode{left: nilRef, right: nilRef, parent: rootRef}
		s.root = ref(charIndex)
		return
	}

	compare := s.compareStrings(b, charIndex, int(s.root))
	if compare == 0 {
		s.nodes[charIndex].left = s.nodes[s.root].left
		s.nodes[charIndex].right = s.nodes[s.root].right
		s.nodes[charIndex].parent = rootRef
		s.fixChildren(ref(charIndex))

		oldRoot := s.root
		s.root = ref(charIndex)
		s.clearNode(oldRoot)
		return
	}

	here := s.root
	for {
		switch {
		case compare < 0:
			if s.nodes[here].left == nilRef {
				s.nodes[here].left = ref(charIndex)
				s.nodes[charIndex] = treeNode{left: nilRef, right: nilRef, parent: here}
				return
			}
			here = s.nodes[here].left

		case compare > 0:
			if s.nodes[here].right == nilRef {
				s.nodes[here].right = ref(charIndex)
				s.nodes[charIndex] = treeNode{left: nilRef, right: nilRef, parent: here}
				return
			}
			here = s.nodes[here].right

		default:
			// Identical string deeper in the tree: transplant.
			s.nodes[charIndex].left = s.nodes[here].left
			s.nodes[charIndex].right = s.nodes[here].right
			s.nodes[charIndex].parent = s.nodes[here].parent
			s.fixChildren(ref(charIndex))

			parent := s.nodes[here].parent
			if s.nodes[parent].left == here {
				s.nodes[parent].left = ref(charIndex)
			} else {
				s.nodes[parent].right = ref(charIndex)
			}

			s.clearNode(here)
			return
		}

		compare = s.compareStrings(b, charIndex, int(here))
	}
}

// removeString deletes the string starting at charIndex if it is in the
// tree. Absent positions are a no-op: most positions are not indexed while
// duplicates of their string survive, and replaceChar removes blindly.
func (s *treeSearcher) removeString(charIndex int) {
	if s.nodes[charIndex].parent == nilRef {
		return
	}

	var here ref
	switch {
	case s.nodes[charIndex].right == nilRef:
		here = s.nodes[charIndex].left

	case s.nodes[charIndex].left == nilRef:
		here = s.nodes[charIndex].right

	default:
		// Two children: promote the in-order predecessor, the rightmost
		// node of the left subtree.
		here = s.nodes[charIndex].left
		for s.nodes[here].right != nilRef {
			here = s.nodes[here].right
		}

		if here != s.nodes[charIndex].left {
			s.nodes[s.nodes[here].parent].right = s.nodes[here].left
			if s.nodes[here].left != nilRef {
				s.nodes[s.nodes[here].left].parent = s.nodes[here].parent
			}

			s.nodes[here].left = s.nodes[charIndex].left
			s.nodes[s.nodes[charIndex].left].parent = here
		}

		s.nodes[here].right = s.nodes[charIndex].right
		s.nodes[s.nodes[charIndex].right].parent = here
	}

	parent := s.nodes[charIndex].parent
	switch {
	case parent == rootRef:
		s.root = here
	case s.nodes[parent].left == ref(charIndex):
		s.nodes[parent].left = here
	default:
		s.nodes[parent].right = here
	}

	if here != nilRef {
		s.nodes[here].parent = parent
	}

	s.clearNode(ref(charIndex))
}

// replaceChar rewrites one window byte. Tree ordering reads MaxCoded bytes
// per string, so the MaxCoded+1 strings whose window coverage includes
// charIndex are all removed under the old content and re-inserted under the
// new.
func (s *treeSearcher) replaceChar(b *windowBuffers, charIndex int, replacement byte) {
	firstIndex := wrap(charIndex-MaxCoded, WindowSize)

	for i := range MaxCoded + 1 {
		s.removeString(wrap(firstIndex+i, WindowSize))
	}

	b.window[charIndex] = replacement

	for i := range MaxCoded + 1 {
		s.addString(b, wrap(firstIndex+i, WindowSize))
	}
}
