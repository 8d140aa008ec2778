package wyrand

import (
	"errors"
	"fmt"

	"github.com/xtding233/wyrand/internal/snapshot"
)

// Algorithm identifies WyRand state in snapshots.
const Algorithm = "wyrand"

// ErrAlgorithmMismatch is returned when restoring a snapshot owned by another algorithm.
var ErrAlgorithmMismatch = errors.New("snapshot is not wyrand state")

// AppendBinary implements encoding.BinaryAppender.
func (w *WyRand) AppendBinary(b []byte) ([]byte, error) {
	return snapshot.Append(b, w.Snapshot()), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (w *WyRand) MarshalBinary() ([]byte, error) {
	return w.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. On error the state is unchanged.
func (w *WyRand) UnmarshalBinary(data []byte) error {
	s, err := snapshot.Unmarshal(data)
	if err != nil {
		return err
	}
	return w.Restore(s)
}

// Snapshot returns the state tagged with the algorithm name.
func (w *WyRand) Snapshot() snapshot.State {
	return snapshot.State{Algorithm: Algorithm, Word: w.state}
}

// Restore sets the state from s if it belongs to WyRand.
func (w *WyRand) Restore(s snapshot.State) error {
	if s.Algorithm != Algorithm {
		return fmt.Errorf("%w: got %q", ErrAlgorithmMismatch, s.Algorithm)
	}
	w.state = s.Word
	return nil
}
