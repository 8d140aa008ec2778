package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/wyrand/internal/config"
)

func main() {
	fs := newFlagSet()
	_ = fs.Parse(os.Args[1:])

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)

	cfg, err := config.Load(fs.Lookup("config").Value.String())
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	flags, err := flagOverrides(fs)
	if err != nil {
		logrus.WithError(err).Fatal("flags")
	}

	params := config.Normalize(config.Merge(cfg, flags))
	if err := config.Validate(params); err != nil {
		logrus.WithError(err).Fatal("config")
	}
	level, _ := logrus.ParseLevel(params.LogLevel)
	logrus.SetLevel(level)

	if err := run(os.Stdout, params, logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("wyrand")
	}
	logrus.WithFields(logrus.Fields{
		"count": params.Count,
		"width": params.Width,
		"bytes": params.Bytes,
	}).Debug("done")
}
