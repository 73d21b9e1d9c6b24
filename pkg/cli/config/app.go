package config

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// App contains the listen address and the public URL of the server
type App struct {
	Addr    string
	BaseURL string // Public URL used to build the OAuth redirect
}

// Flags returns CLI flags for general application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("TSUMUGI_ADDR"),
			Usage:       "Listen address",
			Value:       "127.0.0.1:8080",
			Destination: &a.Addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Sources:     cli.EnvVars("TSUMUGI_BASE_URL"),
			Usage:       "Public base URL of this server (e.g., https://tsumugi.example.com)",
			Value:       "http://localhost:8080",
			Destination: &a.BaseURL,
		},
	}
}

// Validate validates the application configuration
func (a *App) Validate() error {
	if a.Addr == "" {
		return goerr.New("listen address is required")
	}
	if a.BaseURL == "" {
		return goerr.New("base URL is required")
	}

	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid base URL format", goerr.V("base_url", a.BaseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("base URL must be http or https", goerr.V("base_url", a.BaseURL))
	}

	return nil
}

// URL joins path to the base URL
func (a *App) URL(path string) string {
	return strings.TrimRight(a.BaseURL, "/") + path
}

func (a App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", a.Addr),
		slog.String("base_url", a.BaseURL),
	)
}
