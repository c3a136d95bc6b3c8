// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import "fmt"

// match is one candidate found in the window: the absolute window position
// where the matched string starts and its length in bytes. A zero length
// means no usable match; lengths of MaxUncoded or less are emitted as
// literals by the encoder.
type match struct {
	offset int
	length int
}

// searcher is a pluggable window-search strategy. All implementations share
// one discipline with the encoder:
//
//   - init is called once, after the window has been filled with FillByte
//     and before the first findMatch, so index structures can be seeded
//     from the uniform dictionary;
//   - findMatch returns the longest match between the window and the first
//     uncodedLen lookahead bytes, keeping the earliest candidate seen at
//     the winning length;
//   - replaceChar overwrites one window byte and keeps the index exactly
//     consistent, removing every indexed string that covers the changed
//     position before the write and re-adding it after.
type searcher interface {
	init(b *windowBuffers)
	findMatch(b *windowBuffers, windowHead, uncodedHead, uncodedLen int) match
	replaceChar(b *windowBuffers, charIndex int, replacement byte)
}

// MatchFinder selects the window-search strategy used for compression.
type MatchFinder int

// Available match finders. Every finder produces a valid stream for either
// framing. Brute force, hash chain, list and tree find equally long matches
// on every step, so their outputs compress to the same size; the KMP scan
// is a heuristic and may settle for shorter matches.
const (
	// FinderHashChain chains window positions hashed over their first
	// MaxUncoded+1 bytes. The default.
	FinderHashChain MatchFinder = iota

	// FinderList chains window positions by their first byte.
	FinderList

	// FinderTree keeps a binary tree ordered over full MaxCoded-byte
	// window strings.
	FinderTree

	// FinderKMP scans the window with Knuth-Morris-Pratt shifts and
	// maintains no index at all.
	FinderKMP

	// FinderBruteForce checks every window position. The slowest finder
	// and the baseline the indexed ones are measured against.
	FinderBruteForce
)

// finderNames maps MatchFinder values to their command line and API names.
var finderNames = [...]string{
	FinderHashChain:  "hash",
	FinderList:       "list",
	FinderTree:       "tree",
	FinderKMP:        "kmp",
	FinderBruteForce: "brute",
}

// String returns the finder's short name, or "unknown" for invalid values.
func (f MatchFinder) String() string {
	if f < 0 || int(f) >= len(finderNames) {
		return "unknown"
	}
	return finderNames[f]
}

// ParseMatchFinder maps a short name back to its MatchFinder value. The
// recognized names are "hash", "list", "tree", "kmp" and "brute"; anything
// else returns ErrUnknownFinder.
func ParseMatchFinder(name string) (MatchFinder, error) {
	for f, n := range finderNames {
		if n == name {
			return MatchFinder(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFinder, name)
}

// MatchFinderNames returns the recognized finder names in declaration
// order, for usage texts and API discovery.
func MatchFinderNames() []string {
	names := make([]string, len(finderNames))
	copy(names, finderNames[:])
	return names
}

// newSearcher builds the search strategy for f.
func newSearcher(f MatchFinder) (searcher, error) {
	switch f {
	case FinderHashChain:
		return &hashSearcher{}, nil
	case FinderList:
		return &listSearcher{}, nil
	case FinderTree:
		return &treeSearcher{}, nil
	case FinderKMP:
		return &kmpSearcher{}, nil
	case FinderBruteForce:
		return &bruteSearcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFinder, int(f))
	}
}
