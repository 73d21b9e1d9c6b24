package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format is the log output format
type Format int

const (
	FormatConsole Format = iota + 1
	FormatJSON
)

// ParseFormat accepts "console" or "json"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "console":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, goerr.New("invalid log format",
			goerr.V("format", s),
			goerr.V("valid_formats", []string{"console", "json"}))
	}
}

// Options of a logger built by New
type Options struct {
	Level      slog.Level
	Format     Format
	Stacktrace bool
}

var (
	current = slog.Default()
	mu      sync.RWMutex
)

// Default returns the process wide logger. Middleware and background
// handlers start from it.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault replaces the process wide logger and slog's default
func SetDefault(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = logger
	slog.SetDefault(logger)
}

// Discard returns a logger that writes nothing
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// New builds a logger. Notion access tokens, OAuth client secrets and Slack
// credentials are redacted in both formats.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       opts.Level,
			ReplaceAttr: redactor(),
		}))
	}

	hook := clog.GoerrHook
	if !opts.Stacktrace {
		hook = goerrWithoutStack
	}

	return slog.New(clog.New(
		clog.WithWriter(w),
		clog.WithLevel(opts.Level),
		clog.WithReplaceAttr(redactor()),
		clog.WithAttrHook(hook),
		clog.WithColorMap(colors()),
	))
}

func redactor() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldName("AccessToken"),
		masq.WithFieldName("ClientSecret"),
		masq.WithFieldName("SigningSecret"),
		masq.WithFieldName("OAuthToken"),
		masq.WithFieldName("Authorization"),
	)
}

func colors() *clog.ColorMap {
	return &clog.ColorMap{
		Level: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgHiBlack),
			slog.LevelInfo:  color.New(color.FgGreen, color.Bold),
			slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
		LevelDefault: color.New(color.FgBlue),
		Time:         color.New(color.FgHiBlack),
		Message:      color.New(color.FgWhite, color.Bold),
		AttrKey:      color.New(color.FgCyan),
		AttrValue:    color.New(color.FgWhite),
	}
}

// goerrWithoutStack prints a goerr error as its message, values and cause
func goerrWithoutStack(_ []string, attr slog.Attr) *clog.HandleAttr {
	err, ok := attr.Value.Any().(*goerr.Error)
	if !ok {
		return nil
	}

	attrs := []any{slog.String("message", err.Error())}
	for k, v := range err.Values() {
		attrs = append(attrs, slog.Any(k, v))
	}
	if cause := err.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	group := slog.Group(attr.Key, attrs...)
	return &clog.HandleAttr{NewAttr: &group}
}
