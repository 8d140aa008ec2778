// Package snapshot persists generator state in protobuf wire format.
//
// A snapshot is the raw state word plus the algorithm that owns it:
//
//	field 1: algorithm (bytes)
//	field 2: state word (fixed64)
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	algorithmField protowire.Number = 1
	wordField      protowire.Number = 2
)

var (
	// ErrMalformed is returned for truncated or otherwise undecodable snapshots.
	ErrMalformed = errors.New("malformed snapshot")
	// ErrMissingAlgorithm is returned when a snapshot carries no algorithm identity.
	ErrMissingAlgorithm = errors.New("snapshot has no algorithm")
)

// State is a decoded snapshot.
type State struct {
	Algorithm string
	Word      uint64
}

// Append appends the encoding of s to b.
func Append(b []byte, s State) []byte {
	b = protowire.AppendTag(b, algorithmField, protowire.BytesType)
	b = protowire.AppendString(b, s.Algorithm)
	b = protowire.AppendTag(b, wordField, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, s.Word)
	return b
}

// Marshal returns the encoding of s.
func Marshal(s State) []byte { return Append(nil, s) }

// Unmarshal decodes a snapshot. Unknown fields are skipped.
func Unmarshal(b []byte) (State, error) {
	var s State
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return State{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == algorithmField && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return State{}, fmt.Errorf("%w: algorithm: %w", ErrMalformed, protowire.ParseError(m))
			}
			s.Algorithm, n = v, m
		case num == wordField && typ == protowire.Fixed64Type:
			v, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return State{}, fmt.Errorf("%w: word: %w", ErrMalformed, protowire.ParseError(m))
			}
			s.Word, n = v, m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return State{}, fmt.Errorf("%w: field %d: %w", ErrMalformed, num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	if s.Algorithm == "" {
		return State{}, ErrMissingAlgorithm
	}
	return s, nil
}

// Save writes s to path. The file is written next to path and renamed
// over it, so a reader sees either the old snapshot or the new one.
func Save(path string, s State) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Marshal(s)); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from path.
func Load(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read snapshot: %w", err)
	}
	s, err := Unmarshal(b)
	if err != nil {
		return State{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}
