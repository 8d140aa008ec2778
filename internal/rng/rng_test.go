package rng

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// counter is a trivial Generator whose outputs are 1, 2, 3, ...
type counter struct{ n uint64 }

func (c *counter) Seed(seed uint64) { c.n = seed }
func (c *counter) SeedFromEntropy(EntropySource) error { return nil }
func (c *counter) Uint32() uint32 { return uint32(c.Uint64()) }
func (c *counter) Uint64() uint64 { c.n++; return c.n }
func (c *counter) Fill(b []byte) {
	for i := range b {
		b[i] = byte(c.Uint64())
	}
}

type brokenSource struct{ err error }

func (s brokenSource) Read([]byte) (int, error) { return 0, s.err }

func TestReadEntropy(t *testing.T) {
	buf := make([]byte, 4)
	if err := ReadEntropy(bytes.NewReader([]byte{1, 2, 3, 4, 5}), buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Fatalf("got %v", buf)
	}
}

func TestReadEntropyFailures(t *testing.T) {
	cause := errors.New("no device")
	cases := []struct {
		name string
		src  EntropySource
	}{
		{"nil", nil},
		{"error", brokenSource{err: cause}},
		{"short", bytes.NewReader([]byte{1, 2})},
		{"empty", bytes.NewReader(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ReadEntropy(tc.src, make([]byte, 8))
			if !errors.Is(err, ErrEntropyUnavailable) {
				t.Fatalf("expected ErrEntropyUnavailable, got %v", err)
			}
		})
	}
	if err := ReadEntropy(brokenSource{err: cause}, make([]byte, 8)); !errors.Is(err, cause) {
		t.Fatalf("cause should be wrapped, got %v", err)
	}
}

func TestOSEntropy(t *testing.T) {
	buf := make([]byte, 32)
	if err := ReadEntropy(OSEntropy(), buf); err != nil {
		t.Fatalf("os entropy: %v", err)
	}
}

func TestReader(t *testing.T) {
	g := &counter{}
	buf := make([]byte, 3)
	n, err := io.ReadFull(Reader(g), buf)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("got %v", buf)
	}
}
