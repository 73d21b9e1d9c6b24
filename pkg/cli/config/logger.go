package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/utils/logging"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// Logger configures the process wide logger
type Logger struct {
	level      string
	format     string
	output     string
	quiet      bool
	stacktrace bool
}

func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Category:    "logging",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("TSUMUGI_LOG_LEVEL"),
			Usage:       "Log level [debug|info|warn|error]",
			Value:       "info",
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Category:    "logging",
			Sources:     cli.EnvVars("TSUMUGI_LOG_FORMAT"),
			Usage:       "Log format [console|json] (console on a terminal, json otherwise if empty)",
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Category:    "logging",
			Sources:     cli.EnvVars("TSUMUGI_LOG_OUTPUT"),
			Usage:       "Log destination: stdout, stderr or a file path",
			Value:       "stdout",
			Destination: &x.output,
		},
		&cli.BoolFlag{
			Name:        "log-quiet",
			Category:    "logging",
			Sources:     cli.EnvVars("TSUMUGI_LOG_QUIET"),
			Usage:       "Disable logging",
			Destination: &x.quiet,
		},
		&cli.BoolFlag{
			Name:        "log-stacktrace",
			Category:    "logging",
			Sources:     cli.EnvVars("TSUMUGI_LOG_STACKTRACE"),
			Usage:       "Print stack traces of errors in console format",
			Destination: &x.stacktrace,
		},
	}
}

func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
		slog.Bool("quiet", x.quiet),
		slog.Bool("stacktrace", x.stacktrace),
	)
}

// Configure builds the logger and installs it as default. The returned
// func closes a log file and must be called on exit.
func (x *Logger) Configure() (*slog.Logger, func(), error) {
	if x.quiet {
		logger := logging.Discard()
		logging.SetDefault(logger)
		return logger, func() {}, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(x.level)); err != nil {
		return nil, nil, goerr.Wrap(err, "invalid log level", goerr.V("level", x.level))
	}

	w, closer, err := x.openOutput()
	if err != nil {
		return nil, nil, err
	}

	format := logging.FormatJSON
	if x.format == "" {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = logging.FormatConsole
		}
	} else if format, err = logging.ParseFormat(x.format); err != nil {
		closer()
		return nil, nil, err
	}

	logger := logging.New(w, logging.Options{
		Level:      level,
		Format:     format,
		Stacktrace: x.stacktrace,
	})
	logging.SetDefault(logger)

	return logger, closer, nil
}

func (x *Logger) openOutput() (io.Writer, func(), error) {
	switch x.output {
	case "", "stdout", "-":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(filepath.Clean(x.output), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
	}
	return f, func() { safe.Close(context.Background(), f) }, nil
}
