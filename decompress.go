// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses src in memory and returns the decoded bytes.
// opts may be nil (bit-stream framing). Empty input decodes to empty
// output.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses src into dst. The stream carries no length field or
// terminator: decoding stops at end of input, and a token cut short by it
// is dropped since a partial token can only be encoder flush padding. opts
// may be nil (bit-stream framing).
//
// On error the bytes already flushed to dst stay written; the stream is not
// rolled back.
func Decode(dst io.Writer, src io.Reader, opts *DecompressOptions) error {
	if src == nil {
		return ErrNilReader
	}
	if dst == nil {
		return ErrNilWriter
	}
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	in, err := newTokenReader(src, opts.Framing)
	if err != nil {
		return err
	}

	buffers := acquireWindowBuffers()
	defer releaseWindowBuffers(buffers)
	buffers.reset()

	out := bufio.NewWriter(dst)
	nextChar := 0

	for {
		tok, err := in.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if tok.uncoded {
			if err := out.WriteByte(tok.lit); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			buffers.window[nextChar] = tok.lit
			nextChar = wrap(nextChar+1, WindowSize)
			continue
		}

		buffers.stageBackRef(tok.offset, tok.length)
		if _, err := out.Write(buffers.lookahead[:tok.length]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		nextChar = buffers.commitBackRef(nextChar, tok.length)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// DecompressFromReader reads the whole stream from r, then decompresses it.
// If opts.MaxInputSize is positive and the stream is longer, it returns
// ErrInputTooLarge before decoding anything. opts may be nil (bit-stream
// framing, no size limit).
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	limit := opts.MaxInputSize
	if limit > 0 {
		// Read one byte beyond the limit so oversize streams are detected
		// without slurping them whole.
		src, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
		if err != nil {
			return nil, err
		}
		if len(src) > limit {
			return nil, ErrInputTooLarge
		}
		return Decompress(src, opts)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(src, opts)
}
