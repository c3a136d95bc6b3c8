// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Compress compresses src in memory and returns the encoded stream. opts
// may be nil (hash-chain finder, bit-stream framing). Empty input encodes
// to an empty stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(maxCompressedSize(len(src)))

	if err := Encode(&buf, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode compresses src into dst. The stream has no header, length field or
// terminator: its end is simply the last written byte. opts may be nil
// (hash-chain finder, bit-stream framing).
//
// On error the bytes already flushed to dst stay written; the stream is not
// rolled back.
func Encode(dst io.Writer, src io.Reader, opts *CompressOptions) error {
	if src == nil {
		return ErrNilReader
	}
	if dst == nil {
		return ErrNilWriter
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	finder, err := newSearcher(opts.Finder)
	if err != nil {
		return err
	}
	out, err := newTokenWriter(dst, opts.Framing)
	if err != nil {
		return err
	}

	buffers := acquireWindowBuffers()
	defer releaseWindowBuffers(buffers)

	enc := encoder{
		in:      bufio.NewReader(src),
		out:     out,
		buffers: buffers,
		finder:  finder,
	}
	return enc.run()
}

// maxCompressedSize bounds the encoded size of inLen input bytes: the worst
// case is all-literal output at nine bits per byte, plus flush slack.
func maxCompressedSize(inLen int) int {
	return inLen + inLen/8 + 2
}

// encoder holds one compression run: the dictionary and lookahead, the
// finder maintaining its index over them, and the token sink.
type encoder struct {
	in      *bufio.Reader
	out     tokenWriter
	buffers *windowBuffers
	finder  searcher

	windowHead  int // oldest window position, the next to be overwritten
	uncodedHead int // front of the circular lookahead
}

// run drives the encode loop: prime the lookahead, then repeatedly find a
// match for it, emit one token, and slide the window by the token's length.
func (e *encoder) run() error {
	e.buffers.reset()

	length := 0
	for length < MaxCoded {
		c, err := e.in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		e.buffers.lookahead[length] = c
		length++
	}
	if length == 0 {
		// Empty input: nothing is written, not even framing overhead.
		return e.out.close()
	}

	e.finder.init(e.buffers)
	matchData := e.finder.findMatch(e.buffers, e.windowHead, e.uncodedHead, length)

	for length > 0 {
		if matchData.length > length {
			// A match may extend into stale lookahead bytes past the
			// logical end once input runs short; cap it.
			matchData.length = length
		}

		if matchData.length <= MaxUncoded {
			matchData.length = 1
			if err := e.out.literal(e.buffers.lookahead[e.uncodedHead]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		} else {
			if err := e.out.backref(matchData.offset, matchData.length); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		// Slide the window over the encoded bytes. Each consumed lookahead
		// byte displaces the oldest window byte, and the lookahead refills
		// from input for as long as any remains.
		slid := 0
		for slid < matchData.length {
			c, err := e.in.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			e.finder.replaceChar(e.buffers, e.windowHead, e.buffers.lookahead[e.uncodedHead])
			e.buffers.lookahead[e.uncodedHead] = c
			e.windowHead = wrap(e.windowHead+1, WindowSize)
			e.uncodedHead = wrap(e.uncodedHead+1, MaxCoded)
			slid++
		}

		// Input exhausted: keep sliding without refilling, shrinking the
		// logical lookahead instead.
		for slid < matchData.length {
			e.finder.replaceChar(e.buffers, e.windowHead, e.buffers.lookahead[e.uncodedHead])
			e.windowHead = wrap(e.windowHead+1, WindowSize)
			e.uncodedHead = wrap(e.uncodedHead+1, MaxCoded)
			length--
			slid++
		}

		matchData = e.finder.findMatch(e.buffers, e.windowHead, e.uncodedHead, length)
	}

	if err := e.out.close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
