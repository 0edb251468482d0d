package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // Enable pretty console output
	Out    io.Writer // defaults to stderr
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
}

// New creates a structured logger
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var output io.Writer = os.Stderr
	if cfg.Out != nil {
		output = cfg.Out
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}

// Adapter exposes a zerolog.Logger through the printf-style Logger
// interface the calculation engine expects.
type Adapter struct {
	Log zerolog.Logger
}

func NewAdapter(l zerolog.Logger) *Adapter {
	return &Adapter{Log: l}
}

func (a *Adapter) Debugf(format string, args ...any) { a.Log.Debug().Msgf(format, args...) }
func (a *Adapter) Infof(format string, args ...any)  { a.Log.Info().Msgf(format, args...) }
func (a *Adapter) Warnf(format string, args ...any)  { a.Log.Warn().Msgf(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.Log.Error().Msgf(format, args...) }
