// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrNilReader is returned when a nil input reader is passed to Encode or Decode.
	ErrNilReader = errors.New("nil input reader")
	// ErrNilWriter is returned when a nil output writer is passed to Encode or Decode.
	ErrNilWriter = errors.New("nil output writer")
	// ErrUnknownFinder is returned when options name a match finder this package does not provide.
	ErrUnknownFinder = errors.New("unknown match finder")
	// ErrUnknownFraming is returned when options name a wire framing this package does not provide.
	ErrUnknownFraming = errors.New("unknown framing")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
