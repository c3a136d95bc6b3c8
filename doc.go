// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

/*
Package lzss implements LZSS (Lempel-Ziv-Storer-Szymanski) compression: a
sliding-window codec that replaces repeated byte sequences with (offset,
length) references into a 4 KiB dictionary of recently seen bytes.

Matches span 3 to 18 bytes; anything shorter is cheaper as a literal, so
the length field stores length−3 in 4 bits next to a 12-bit window offset.
Streams have no header, length field or terminator: decoding stops at end
of input. The dictionary starts filled with spaces on both sides, so early
references may point into window positions no byte was ever written to.

# Compress

Options may be nil (hash-chain finder, bit-stream framing):

	out, err := lzss.Compress(data, nil)
	out, err := lzss.Compress(data, &lzss.CompressOptions{Finder: lzss.FinderTree})

Streaming, without buffering the input:

	err := lzss.Encode(dst, src, nil)

The finder only affects speed, not correctness: every finder produces a
stream any decoder of the same framing decodes to the original input. The
indexed finders (hash, list, tree) and brute force find equally long
matches; FinderKMP may settle for slightly shorter ones.

# Decompress

The framing must match the encoder's; the stream does not identify it:

	out, err := lzss.Decompress(compressed, nil)
	out, err := lzss.Decompress(compressed, &lzss.DecompressOptions{Framing: lzss.FramingFlagBlock})

From an io.Reader, optionally bounding how much is read:

	out, err := lzss.DecompressFromReader(r, &lzss.DecompressOptions{MaxInputSize: 16 << 20})

# Framings

FramingBitStream interleaves a flag bit before every token, spending nine
bits per literal. FramingFlagBlock groups eight flags into one byte ahead
of the payload, keeping all tokens byte aligned at the same worst-case
cost. The two produce different streams from identical input and cannot
decode each other's output.
*/
package lzss
