// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

// CompressOptions configures compression: which finder searches the window
// and how tokens are framed on the wire. The zero value selects the
// defaults (hash-chain finder, bit-stream framing).
type CompressOptions struct {
	// Finder selects the window-search strategy. All finders produce
	// valid streams; they differ in speed and, for FinderKMP, slightly in
	// ratio.
	Finder MatchFinder
	// Framing selects the wire format. The decoder must be configured
	// with the same value.
	Framing Framing
}

// DefaultCompressOptions returns options for the hash-chain finder with
// bit-stream framing.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Finder: FinderHashChain, Framing: FramingBitStream}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// Framing selects the wire format and must match the one the stream
	// was encoded with; the stream itself carries no marker.
	Framing Framing
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options for the bit-stream framing with
// no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Framing: FramingBitStream}
}
