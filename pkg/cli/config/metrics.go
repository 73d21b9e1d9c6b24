package config

import (
	"net/http"

	"github.com/m-mizutani/tsumugi/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

type Metrics struct {
	Enabled bool
}

func (x *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Sources:     cli.EnvVars("TSUMUGI_METRICS"),
			Destination: &x.Enabled,
		},
	}
}

// Configure returns the recorder and the /metrics handler. The handler is
// nil when metrics are disabled.
func (x *Metrics) Configure() (metrics.Recorder, http.Handler) {
	if !x.Enabled {
		return metrics.Nop{}, nil
	}

	reg := prometheus.NewRegistry()
	return metrics.NewCollector(reg), metrics.Handler(reg)
}
