package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalid = errors.New("invalid config")

// Validate checks semantic constraints of normalized params and reports all of them at once.
func Validate(p Params) error {
	var errs []string

	if p.Width != 32 && p.Width != 64 {
		errs = append(errs, "width must be 32 or 64")
	}
	if p.Count < 0 {
		errs = append(errs, "count must be >= 0")
	}
	if p.Bytes < 0 {
		errs = append(errs, "bytes must be >= 0")
	}
	switch p.Format {
	case FormatHex, FormatDec:
	case FormatRaw:
		if p.Bytes == 0 {
			errs = append(errs, "format=raw requires bytes > 0")
		}
	default:
		errs = append(errs, "format must be one of: hex, dec, raw")
	}
	if p.Format == FormatDec && p.Bytes > 0 {
		errs = append(errs, "format=dec is not available for byte output")
	}
	if _, err := logrus.ParseLevel(p.LogLevel); err != nil {
		errs = append(errs, "log_level: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}
