// Package wyrand implements the WyRand pseudo-random number generator.
//
// WyRand is fast and passes BigCrush and PractRand, but it is not
// cryptographically secure. A WyRand is a single 64-bit state word; it holds
// no locks, so each goroutine should own its generator or serialize access.
package wyrand

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"

	"github.com/xtding233/wyrand/internal/rng"
)

const (
	// Increment is added to the state on every step.
	Increment uint64 = 0xa0761d6478bd642f
	// Mix is the multiplier used by both rounds of the output function.
	Mix uint64 = 0xe7037ed1a0b428db
)

var (
	_ rng.Generator = (*WyRand)(nil)
	_ rand.Source   = (*WyRand)(nil)
)

// WyRand is the generator state. The zero value is a valid generator seeded with 0.
type WyRand struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) WyRand { return WyRand{state: seed} }

// FromSeed interprets seed as a little-endian state word.
func FromSeed(seed [8]byte) WyRand {
	return New(binary.LittleEndian.Uint64(seed[:]))
}

// FromGenerator seeds a new generator from one 64-bit output of g.
func FromGenerator(g rng.Generator) WyRand { return New(g.Uint64()) }

// FromEntropy seeds a new generator from 8 bytes of src.
func FromEntropy(src rng.EntropySource) (WyRand, error) {
	var w WyRand
	if err := w.SeedFromEntropy(src); err != nil {
		return WyRand{}, err
	}
	return w, nil
}

// Seed sets the state to seed.
func (w *WyRand) Seed(seed uint64) { w.state = seed }

// SeedFromEntropy reads 8 bytes from src as a little-endian state word.
// The state is left untouched when src fails.
func (w *WyRand) SeedFromEntropy(src rng.EntropySource) error {
	var buf [8]byte
	if err := rng.ReadEntropy(src, buf[:]); err != nil {
		return err
	}
	w.state = binary.LittleEndian.Uint64(buf[:])
	return nil
}

// State returns the current state word.
func (w *WyRand) State() uint64 { return w.state }

// Uint64 advances the state once and returns the mixed output.
func (w *WyRand) Uint64() uint64 {
	w.state += Increment
	hi, lo := bits.Mul64(w.state, Mix)
	hi, lo = bits.Mul64(hi^lo, Mix)
	return hi ^ lo
}

// Uint32 returns the low 32 bits of one Uint64 step.
func (w *WyRand) Uint32() uint32 { return uint32(w.Uint64()) }

// Fill fills b with little-endian Uint64 outputs, using ceil(len(b)/8) steps.
func (w *WyRand) Fill(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, w.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		r := w.Uint64()
		for i := range b {
			b[i] = byte(r)
			r >>= 8
		}
	}
}

// TryFill is Fill with an error result; it never fails.
func (w *WyRand) TryFill(b []byte) error {
	w.Fill(b)
	return nil
}

// Read implements io.Reader. It always fills p.
func (w *WyRand) Read(p []byte) (int, error) {
	w.Fill(p)
	return len(p), nil
}
