// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package lzss

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Framing selects the wire-level arrangement of flags and token payloads.
// The two framings cannot decode each other's streams and the stream itself
// carries no marker, so encoder and decoder must agree out of band.
type Framing int

const (
	// FramingBitStream interleaves one flag bit directly before each
	// token: flag 1 then an 8-bit literal, or flag 0 then a 12-bit offset
	// and 4-bit length, all MSB first. The default.
	FramingBitStream Framing = iota

	// FramingFlagBlock groups up to eight decisions behind a single flag
	// byte followed by the group's payload bytes, keeping every token on
	// a byte boundary.
	FramingFlagBlock
)

// framingNames maps Framing values to their command line and API names.
var framingNames = [...]string{
	FramingBitStream: "bits",
	FramingFlagBlock: "blocks",
}

// String returns the framing's short name, or "unknown" for invalid values.
func (f Framing) String() string {
	if f < 0 || int(f) >= len(framingNames) {
		return "unknown"
	}
	return framingNames[f]
}

// ParseFraming maps a short name back to its Framing value. The recognized
// names are "bits" and "blocks"; anything else returns ErrUnknownFraming.
func ParseFraming(name string) (Framing, error) {
	for f, n := range framingNames {
		if n == name {
			return Framing(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFraming, name)
}

// FramingNames returns the recognized framing names in declaration order,
// for usage texts and API discovery.
func FramingNames() []string {
	names := make([]string, len(framingNames))
	copy(names, framingNames[:])
	return names
}

// flagsPerBlock is the number of decisions grouped behind one flag byte in
// the flag-block framing.
const flagsPerBlock = 8

// token is one parsed encoder decision: either a literal byte or a
// back-reference into the window.
type token struct {
	uncoded bool
	lit     byte
	offset  int
	length  int
}

// tokenWriter serializes encoder decisions into one of the framings. close
// flushes any partial trailing unit; neither framing writes a terminator,
// the stream simply ends.
type tokenWriter interface {
	literal(c byte) error
	backref(offset, length int) error
	close() error
}

// tokenReader parses decisions back out of a stream. next returns io.EOF
// both for a clean end between tokens and for a token cut short by the end
// of input: a truncated token can only be flush padding, so both cases end
// decoding normally.
type tokenReader interface {
	next() (token, error)
}

// newTokenWriter builds the writer side of the selected framing.
func newTokenWriter(w io.Writer, f Framing) (tokenWriter, error) {
	switch f {
	case FramingBitStream:
		return newBitTokenWriter(w), nil
	case FramingFlagBlock:
		return newBlockTokenWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFraming, int(f))
	}
}

// newTokenReader builds the reader side of the selected framing.
func newTokenReader(r io.Reader, f Framing) (tokenReader, error) {
	switch f {
	case FramingBitStream:
		return newBitTokenReader(r), nil
	case FramingFlagBlock:
		return newBlockTokenReader(r), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFraming, int(f))
	}
}

// bitTokenWriter writes the bit-interleaved framing. close zero-pads the
// final partial byte; at most seven padding bits remain and a back-reference
// token needs seventeen, so padding can never decode as a spurious token.
type bitTokenWriter struct {
	w *bitio.Writer
}

func newBitTokenWriter(w io.Writer) *bitTokenWriter {
	return &bitTokenWriter{w: bitio.NewWriter(w)}
}

func (t *bitTokenWriter) literal(c byte) error {
	if err := t.w.WriteBool(true); err != nil {
		return err
	}
	return t.w.WriteByte(c)
}

func (t *bitTokenWriter) backref(offset, length int) error {
	if err := t.w.WriteBool(false); err != nil {
		return err
	}
	if err := t.w.WriteBits(uint64(offset), OffsetBits); err != nil { // #nosec G115 -- offset < WindowSize
		return err
	}
	return t.w.WriteBits(uint64(length-(MaxUncoded+1)), LengthBits) // #nosec G115 -- length <= MaxCoded
}

func (t *bitTokenWriter) close() error {
	return t.w.Close()
}

// bitTokenReader parses the bit-interleaved framing.
type bitTokenReader struct {
	r *bitio.Reader
}

func newBitTokenReader(r io.Reader) *bitTokenReader {
	return &bitTokenReader{r: bitio.NewReader(r)}
}

func (t *bitTokenReader) next() (token, error) {
	uncoded, err := t.r.ReadBool()
	if err != nil {
		return token{}, err
	}

	if uncoded {
		c, err := t.r.ReadByte()
		if err != nil {
			return token{}, err
		}
		return token{uncoded: true, lit: c}, nil
	}

	offset, err := t.r.ReadBits(OffsetBits)
	if err != nil {
		return token{}, err
	}
	length, err := t.r.ReadBits(LengthBits)
	if err != nil {
		return token{}, err
	}

	return token{offset: int(offset), length: int(length) + MaxUncoded + 1}, nil
}

// blockTokenWriter writes the flag-block framing: decisions accumulate
// eight at a time, then one flag byte (LSB first, set bit = literal) and
// the group's payload bytes go out together. A short final group flushes on
// close with its unused flag bits zero; a decoder reading those bits runs
// into end of input mid-token and stops.
type blockTokenWriter struct {
	w       *bitio.Writer
	flags   byte
	flagPos byte
	pending [flagsPerBlock * 2]byte
	n       int // buffered payload bytes
}

func newBlockTokenWriter(w io.Writer) *blockTokenWriter {
	return &blockTokenWriter{w: bitio.NewWriter(w), flagPos: 0x01}
}

func (t *blockTokenWriter) literal(c byte) error {
	t.flags |= t.flagPos
	t.pending[t.n] = c
	t.n++
	return t.advance()
}

func (t *blockTokenWriter) backref(offset, length int) error {
	// #nosec G115 -- both halves are masked or bounded to 8 bits
	b1 := byte((offset & 0x0fff) >> 4)
	b2 := byte(((offset & 0x000f) << 4) | (length - MaxUncoded - 1))

	t.pending[t.n] = b1
	t.pending[t.n+1] = b2
	t.n += 2
	return t.advance()
}

// advance rotates the flag position, flushing when the eighth decision of
// the group lands.
func (t *blockTokenWriter) advance() error {
	if t.flagPos != 0x80 {
		t.flagPos <<= 1
		return nil
	}
	return t.flush()
}

func (t *blockTokenWriter) flush() error {
	if err := t.w.WriteByte(t.flags); err != nil {
		return err
	}
	for i := range t.n {
		if err := t.w.WriteByte(t.pending[i]); err != nil {
			return err
		}
	}

	t.flags = 0
	t.flagPos = 0x01
	t.n = 0
	return nil
}

func (t *blockTokenWriter) close() error {
	if t.n > 0 {
		if err := t.flush(); err != nil {
			return err
		}
	}
	return t.w.Close()
}

// blockTokenReader parses the flag-block framing, consuming the flag byte
// one shift per decision and reloading every eighth.
type blockTokenReader struct {
	r         *bitio.Reader
	flags     byte
	flagsUsed int
}

func newBlockTokenReader(r io.Reader) *blockTokenReader {
	return &blockTokenReader{r: bitio.NewReader(r), flagsUsed: flagsPerBlock - 1}
}

func (t *blockTokenReader) next() (token, error) {
	t.flags >>= 1
	t.flagsUsed++

	if t.flagsUsed == flagsPerBlock {
		b, err := t.r.ReadByte()
		if err != nil {
			return token{}, err
		}
		t.flags = b
		t.flagsUsed = 0
	}

	if t.flags&0x01 != 0 {
		c, err := t.r.ReadByte()
		if err != nil {
			return token{}, err
		}
		return token{uncoded: true, lit: c}, nil
	}

	b1, err := t.r.ReadByte()
	if err != nil {
		return token{}, err
	}
	b2, err := t.r.ReadByte()
	if err != nil {
		return token{}, err
	}

	offset := int(b1)<<4 | int(b2&0xf0)>>4
	length := int(b2&0x0f) + MaxUncoded + 1

	return token{offset: offset, length: length}, nil
}
