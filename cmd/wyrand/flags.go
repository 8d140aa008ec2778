package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/xtding233/wyrand/internal/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("wyrand", flag.ExitOnError)
	fs.String("config", "", "YAML config file")
	fs.String("seed", "", "seed (decimal or 0x hex); empty seeds from OS entropy")
	fs.Int("n", 1, "number of outputs")
	fs.Int("width", 64, "output width: 32 or 64")
	fs.Int("bytes", 0, "fill this many bytes instead of printing integers")
	fs.String("format", config.FormatHex, "hex, dec or raw")
	fs.String("state", "", "snapshot file to resume from and save to")
	fs.String("log-level", "info", "logrus level")
	return fs
}

// flagOverrides returns only the flags given on the command line, so
// defaults never clobber file or env values.
func flagOverrides(fs *flag.FlagSet) (config.RawConfig, error) {
	var cfg config.RawConfig
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "seed":
			cfg.Seed, err = config.ParseSeed(v)
		case "n":
			cfg.Count, err = atoi(v)
		case "width":
			cfg.Width, err = atoi(v)
		case "bytes":
			cfg.Bytes, err = atoi(v)
		case "format":
			cfg.Format = v
		case "state":
			cfg.State = v
		case "log-level":
			cfg.LogLevel = v
		}
		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	if err != nil {
		return config.RawConfig{}, err
	}
	return cfg, nil
}

func atoi(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
