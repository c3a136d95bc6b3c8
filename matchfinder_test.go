package lzss

import (
	"bytes"
	"testing"
)

// primeWindow feeds data through a searcher with the engine's discipline:
// init on the uniform window, then one replaceChar per committed byte at
// the sliding head. Returns the window head after the last byte.
func primeWindow(s searcher, b *windowBuffers, data []byte) int {
	b.reset()
	s.init(b)

	head := 0
	for _, c := range data {
		s.replaceChar(b, head, c)
		head = wrap(head+1, WindowSize)
	}
	return head
}

// searchFor lays pattern flat at the front of the lookahead and runs one
// findMatch against it.
func searchFor(s searcher, b *windowBuffers, head int, pattern string) match {
	copy(b.lookahead[:], pattern)
	return s.findMatch(b, head, 0, len(pattern))
}

// checkMatchContent fails the test unless the match's window bytes equal
// the pattern prefix it claims to cover.
func checkMatchContent(t *testing.T, b *windowBuffers, m match, pattern string) {
	t.Helper()
	for i := range m.length {
		if got, want := b.window[wrap(m.offset+i, WindowSize)], pattern[i]; got != want {
			t.Fatalf("match {offset %d, length %d} byte %d: window has %q, lookahead has %q",
				m.offset, m.length, i, got, want)
		}
	}
}

func TestFindMatch_FullLengthLocation(t *testing.T) {
	// "abcd" occurs once in the primed window, at position 0; the "abc" at
	// position 6 runs into fill bytes. Every finder must report the full
	// four-byte match at 0.
	for _, finder := range allFinders() {
		t.Run(finder.String(), func(t *testing.T) {
			s, err := newSearcher(finder)
			if err != nil {
				t.Fatalf("newSearcher failed: %v", err)
			}

			b := &windowBuffers{}
			head := primeWindow(s, b, []byte("abcdefabc"))

			m := searchFor(s, b, head, "abcd")
			if m.length != 4 || m.offset != 0 {
				t.Fatalf("got {offset %d, length %d}, want {offset 0, length 4}", m.offset, m.length)
			}
		})
	}
}

func TestFindMatch_PartialLength(t *testing.T) {
	// "abcx" has no full occurrence; the best match is the three bytes of
	// either "abc". All finders agree on the length, and the offset must
	// really hold those bytes.
	for _, finder := range allFinders() {
		t.Run(finder.String(), func(t *testing.T) {
			s, err := newSearcher(finder)
			if err != nil {
				t.Fatalf("newSearcher failed: %v", err)
			}

			b := &windowBuffers{}
			head := primeWindow(s, b, []byte("abcdefabc"))

			m := searchFor(s, b, head, "abcx")
			if m.length != 3 {
				t.Fatalf("got length %d, want 3", m.length)
			}
			checkMatchContent(t, b, m, "abcx")
		})
	}
}

func TestFindMatch_ShortLookaheadDeclined(t *testing.T) {
	// At MaxUncoded or fewer pending bytes a coded token cannot pay for
	// itself, so finders report no match at all.
	for _, finder := range allFinders() {
		t.Run(finder.String(), func(t *testing.T) {
			s, err := newSearcher(finder)
			if err != nil {
				t.Fatalf("newSearcher failed: %v", err)
			}

			b := &windowBuffers{}
			head := primeWindow(s, b, []byte("aaaaaa"))

			m := searchFor(s, b, head, "aa")
			if m.length != 0 {
				t.Fatalf("got length %d for 2-byte lookahead, want 0", m.length)
			}
		})
	}
}

func TestFindMatch_CapsAtMaxCoded(t *testing.T) {
	// The window holds a run far longer than the lookahead; the match is
	// naturally capped at the lookahead length, never beyond MaxCoded.
	run := bytes.Repeat([]byte{'q'}, 100)
	pattern := string(bytes.Repeat([]byte{'q'}, MaxCoded))

	for _, finder := range allFinders() {
		t.Run(finder.String(), func(t *testing.T) {
			s, err := newSearcher(finder)
			if err != nil {
				t.Fatalf("newSearcher failed: %v", err)
			}

			b := &windowBuffers{}
			head := primeWindow(s, b, run)

			m := searchFor(s, b, head, pattern)
			if m.length != MaxCoded {
				t.Fatalf("got length %d, want %d", m.length, MaxCoded)
			}
			checkMatchContent(t, b, m, pattern)
		})
	}
}

func TestFindMatch_IndexSurvivesWindowWraparound(t *testing.T) {
	// More than WindowSize bytes force every position through multiple
	// replaceChar cycles: chain unlink/relink and tree delete/reinsert all
	// run at full occupancy. The index-integrity assertions fire (panic)
	// if any structure loses a position along the way.
	corpus := bytes.Repeat([]byte("integrity check corpus 0123456789 "), 200)
	if len(corpus) <= WindowSize {
		t.Fatalf("corpus too short to wrap: %d", len(corpus))
	}

	for _, finder := range allFinders() {
		t.Run(finder.String(), func(t *testing.T) {
			s, err := newSearcher(finder)
			if err != nil {
				t.Fatalf("newSearcher failed: %v", err)
			}

			b := &windowBuffers{}
			head := primeWindow(s, b, corpus)

			m := searchFor(s, b, head, "integrity check")
			if m.length != len("integrity check") {
				t.Fatalf("got length %d, want %d", m.length, len("integrity check"))
			}
			checkMatchContent(t, b, m, "integrity check")
		})
	}
}

func TestFindMatch_TreeCollapsesToSingleString(t *testing.T) {
	// A window full of one byte leaves a single distinct string: duplicate
	// inserts keep promoting the newest position and deletions can empty
	// the tree entirely before the next insert reseeds it. Matching still
	// works afterwards.
	s := &treeSearcher{}
	b := &windowBuffers{}
	head := primeWindow(s, b, bytes.Repeat([]byte{'A'}, WindowSize+500))

	pattern := string(bytes.Repeat([]byte{'A'}, 10))
	m := searchFor(s, b, head, pattern)
	if m.length != 10 {
		t.Fatalf("got length %d, want 10", m.length)
	}
	checkMatchContent(t, b, m, pattern)
}

func TestFindMatch_HashTrustsBucketBeyondFirstByte(t *testing.T) {
	// The hash finder only re-verifies a candidate's first byte, so a
	// colliding chain entry can yield a match of up to MaxUncoded bytes
	// that the full key does not share. The engine emits literals for
	// those, so they are harmless; the finder must still never report a
	// match longer than the true common prefix.
	corpus := []byte("collision probe: abQ abR abS abT")
	s := &hashSearcher{}
	b := &windowBuffers{}
	head := primeWindow(s, b, corpus)

	m := searchFor(s, b, head, "abZZZZ")
	if m.length > MaxUncoded {
		checkMatchContent(t, b, m, "abZZZZ")
	}
}

func TestWindowBuffers_UnwrapLookahead(t *testing.T) {
	b := &windowBuffers{}
	for i := range b.lookahead {
		b.lookahead[i] = byte('a' + i)
	}

	var flat [MaxCoded]byte
	b.unwrapLookahead(&flat, MaxCoded-2, 5)

	want := []byte{
		'a' + MaxCoded - 2,
		'a' + MaxCoded - 1,
		'a', 'b', 'c',
	}
	if !bytes.Equal(flat[:5], want) {
		t.Fatalf("unwrapped % x, want % x", flat[:5], want)
	}
}
