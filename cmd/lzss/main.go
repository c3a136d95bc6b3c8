// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

// Command lzss compresses and decompresses files with the LZSS library.
//
// Usage:
//
//	lzss [-c | -d] -i <input file> -o <output file> [-m finder] [-w framing] [-q]
//
// Compression is the default mode. The finder selects the match search
// strategy used while encoding and the framing selects the stream layout;
// both sides of a transfer must agree on the framing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"

	"github.com/MichaelDipperstein/lzss"
)

// onceString is a flag.Value that rejects a flag given more than once.
type onceString struct {
	value string
	set   bool
}

func (s *onceString) String() string { return s.value }

func (s *onceString) Set(value string) error {
	if s.set {
		return errors.New("may only be given once")
	}
	s.value = value
	s.set = true
	return nil
}

var (
	compress    = flag.Bool("c", false, "encode the input file to the output file (default)")
	decompress  = flag.Bool("d", false, "decode the input file to the output file")
	finderName  = flag.String("m", "hash", "match finder: "+strings.Join(lzss.MatchFinderNames(), ", "))
	framingName = flag.String("w", "bits", "stream framing: "+strings.Join(lzss.FramingNames(), ", "))
	quiet       = flag.Bool("q", false, "suppress the progress bar and summary")

	inputFile  onceString
	outputFile onceString
)

func init() {
	flag.Var(&inputFile, "i", "name of the input file")
	flag.Var(&outputFile, "o", "name of the output file")
}

// fatal reports err on stderr in red and exits. Called only after output
// has been flushed or abandoned.
func fatal(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, "lzss:", err)
	os.Exit(1)
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func main() {
	flag.Parse()

	if *compress && *decompress {
		fatal(errors.New("-c and -d are mutually exclusive"))
	}
	if inputFile.value == "" {
		fmt.Fprintln(os.Stderr, "Input file must be provided.")
		fmt.Fprintln(os.Stderr, "Enter \"lzss -h\" for help.")
		os.Exit(1)
	}
	if outputFile.value == "" {
		fmt.Fprintln(os.Stderr, "Output file must be provided.")
		fmt.Fprintln(os.Stderr, "Enter \"lzss -h\" for help.")
		os.Exit(1)
	}

	finder, err := lzss.ParseMatchFinder(*finderName)
	if err != nil {
		fatal(err)
	}
	framing, err := lzss.ParseFraming(*framingName)
	if err != nil {
		fatal(err)
	}

	in, err := os.Open(inputFile.value)
	if err != nil {
		fatal(err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		fatal(err)
	}

	out, err := os.Create(outputFile.value)
	if err != nil {
		fatal(err)
	}

	var src io.Reader = in
	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New64(info.Size())
		bar.Set(pb.Bytes, true)
		bar.Start()
		src = bar.NewProxyReader(in)
	}

	counted := &countingWriter{w: out}
	if *decompress {
		err = lzss.Decode(counted, src, &lzss.DecompressOptions{Framing: framing})
	} else {
		err = lzss.Encode(counted, src, &lzss.CompressOptions{Finder: finder, Framing: framing})
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		out.Close()
		fatal(err)
	}
	if err := out.Close(); err != nil {
		fatal(err)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "%s: %d bytes in, %d bytes out%s\n",
			outputFile.value, info.Size(), counted.n, ratio(info.Size(), counted.n))
	}
}

// ratio formats the output/input size ratio, or nothing for an empty input.
func ratio(in, out int64) string {
	if in == 0 {
		return ""
	}
	return fmt.Sprintf(" (%.1f%%)", float64(out)/float64(in)*100)
}
