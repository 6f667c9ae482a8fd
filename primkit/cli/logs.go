package cli

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if !json {
		w = zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
