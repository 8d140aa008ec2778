package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/wyrand/internal/config"
	"github.com/xtding233/wyrand/internal/rng"
	"github.com/xtding233/wyrand/internal/snapshot"
	"github.com/xtding233/wyrand/internal/wyrand"
)

// entropy is swapped in tests.
var entropy = rng.OSEntropy

// newGenerator picks the starting state: explicit seed, then state file, then OS entropy.
func newGenerator(p config.Params, log logrus.FieldLogger) (wyrand.WyRand, error) {
	if p.Seed != nil {
		log.WithField("seed", fmt.Sprintf("%#x", *p.Seed)).Debug("seeded explicitly")
		return wyrand.New(*p.Seed), nil
	}
	if p.StatePath != "" {
		s, err := snapshot.Load(p.StatePath)
		switch {
		case err == nil:
			var w wyrand.WyRand
			if err := w.Restore(s); err != nil {
				return wyrand.WyRand{}, fmt.Errorf("restore %s: %w", p.StatePath, err)
			}
			log.WithField("state", p.StatePath).Debug("resumed from snapshot")
			return w, nil
		case !errors.Is(err, os.ErrNotExist):
			return wyrand.WyRand{}, err
		}
	}
	w, err := wyrand.FromEntropy(entropy())
	if err != nil {
		return wyrand.WyRand{}, fmt.Errorf("seed from entropy: %w", err)
	}
	// report the seed so the stream can be replayed with -seed
	log.WithField("seed", fmt.Sprintf("%#x", w.State())).Info("seeded from entropy")
	return w, nil
}

func run(out io.Writer, p config.Params, log logrus.FieldLogger) error {
	w, err := newGenerator(p, log)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if p.Bytes > 0 {
		err = writeBytes(bw, &w, p)
	} else {
		err = writeInts(bw, &w, p)
	}
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if p.StatePath != "" {
		if err := snapshot.Save(p.StatePath, w.Snapshot()); err != nil {
			return err
		}
		log.WithField("state", p.StatePath).Debug("saved snapshot")
	}
	return nil
}

func writeInts(bw *bufio.Writer, g rng.Generator, p config.Params) error {
	var line []byte
	for i := 0; i < p.Count; i++ {
		var v uint64
		if p.Width == 32 {
			v = uint64(g.Uint32())
		} else {
			v = g.Uint64()
		}
		line = line[:0]
		if p.Format == config.FormatDec {
			line = strconv.AppendUint(line, v, 10)
		} else {
			line = fmt.Appendf(line, "%0*x", p.Width/4, v)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func writeBytes(bw *bufio.Writer, g rng.Generator, p config.Params) error {
	buf := make([]byte, p.Bytes)
	g.Fill(buf)
	var err error
	if p.Format == config.FormatRaw {
		_, err = bw.Write(buf)
	} else {
		_, err = bw.WriteString(hex.EncodeToString(buf) + "\n")
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
