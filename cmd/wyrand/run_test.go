package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/wyrand/internal/config"
	"github.com/xtding233/wyrand/internal/rng"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func params(t *testing.T, raw config.RawConfig) config.Params {
	t.Helper()
	p := config.Normalize(raw)
	if err := config.Validate(p); err != nil {
		t.Fatal(err)
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func TestRunHex64(t *testing.T) {
	var out bytes.Buffer
	p := params(t, config.RawConfig{Seed: ptr(uint64(0)), Count: ptr(2)})
	if err := run(&out, p, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if want := "42bc986dc5eec4d3\nc5dcc93144e354ce\n"; out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestRunDec32(t *testing.T) {
	var out bytes.Buffer
	p := params(t, config.RawConfig{Seed: ptr(uint64(0)), Count: ptr(2), Width: ptr(32), Format: config.FormatDec})
	if err := run(&out, p, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if want := "3320759507\n1155749070\n"; out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestRunBytes(t *testing.T) {
	var out bytes.Buffer
	p := params(t, config.RawConfig{Seed: ptr(uint64(0)), Bytes: ptr(9)})
	if err := run(&out, p, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if want := "d3c4eec56d98bc42ce\n"; out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}

	out.Reset()
	p.Format = config.FormatRaw
	if err := run(&out, p, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 9 || out.Bytes()[0] != 0xd3 {
		t.Fatalf("raw output %x", out.Bytes())
	}
}

func TestRunResumesFromState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wyrand.state")

	var out bytes.Buffer
	first := params(t, config.RawConfig{Seed: ptr(uint64(0)), State: path})
	if err := run(&out, first, quietLogger()); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	resume := params(t, config.RawConfig{State: path})
	if err := run(&out, resume, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if want := "c5dcc93144e354ce\n"; out.String() != want {
		t.Fatalf("resume: got %q want %q", out.String(), want)
	}
}

func TestRunSeedsFromEntropy(t *testing.T) {
	defer func(orig func() rng.EntropySource) { entropy = orig }(entropy)
	entropy = func() rng.EntropySource { return bytes.NewReader(make([]byte, 8)) }

	var out bytes.Buffer
	if err := run(&out, params(t, config.RawConfig{}), quietLogger()); err != nil {
		t.Fatal(err)
	}
	if want := "42bc986dc5eec4d3\n"; out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestRunEntropyFailure(t *testing.T) {
	defer func(orig func() rng.EntropySource) { entropy = orig }(entropy)
	entropy = func() rng.EntropySource { return bytes.NewReader(nil) }

	var out bytes.Buffer
	err := run(&out, params(t, config.RawConfig{}), quietLogger())
	if !errors.Is(err, rng.ErrEntropyUnavailable) {
		t.Fatalf("expected ErrEntropyUnavailable, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %q", out.String())
	}
}
