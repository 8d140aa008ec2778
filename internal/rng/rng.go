// Package rng defines the capability shared by the module's generators.
//
// Generic sampling code is written once against Generator; a concrete
// generator such as wyrand.WyRand is a plain value that implements it.
package rng

import (
	cryptoRand "crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrEntropyUnavailable is returned when the entropy source cannot supply bytes.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// Generator is the capability generic sampling code is written against:
// seed from an integer or from entropy, draw 32 or 64 bits, fill bytes.
// Implementations hold no locks.
type Generator interface {
	Seed(seed uint64)
	SeedFromEntropy(src EntropySource) error
	Uint32() uint32
	Uint64() uint64
	Fill(b []byte)
}

// EntropySource supplies externally sourced random bytes. It has the shape of io.Reader.
type EntropySource interface {
	Read(p []byte) (int, error)
}

// OSEntropy returns the platform entropy provider.
func OSEntropy() EntropySource { return cryptoRand.Reader }

// ReadEntropy fills buf from src. Any failure, including a short read,
// is reported as ErrEntropyUnavailable.
func ReadEntropy(src EntropySource, buf []byte) error {
	if src == nil {
		return fmt.Errorf("%w: no entropy source", ErrEntropyUnavailable)
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return nil
}

type reader struct{ g Generator }

// Reader adapts g to io.Reader. Reads always fill p and never fail.
func Reader(g Generator) io.Reader { return reader{g: g} }

func (r reader) Read(p []byte) (int, error) {
	r.g.Fill(p)
	return len(p), nil
}
