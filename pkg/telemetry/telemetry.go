package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion string

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"screener"`
	Environment   string              `yaml:"environment" mapstructure:"environment" default:"development"`
	NewRelic      NewRelicConfig      `yaml:"newrelic" mapstructure:"newrelic"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// MetricName prefixes name with the app name, e.g. screener.http.requests.
func (cfg Config) MetricName(name string) string {
	if cfg.AppName == "" {
		return name
	}
	return cfg.AppName + "." + name
}

// Telemetry is what Init started. A nil *Telemetry records nothing.
type Telemetry struct {
	NewRelic *newrelic.Application
	HTTP     *HTTPMetrics

	shutdown []func()
}

// Init installs the global OpenTelemetry providers, starts the New Relic
// agent and registers the HTTP instruments. Exporters that are disabled in
// cfg are skipped.
func Init(ctx context.Context, cfg Config, logger log.Logger) (*Telemetry, error) {
	t := &Telemetry{}

	shutdownOTLP, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	t.shutdown = append(t.shutdown, shutdownOTLP)

	nrApp, err := initNewRelicMonitor(cfg, logger)
	if err != nil {
		t.Close()
		return nil, err
	}
	if nrApp != nil {
		t.NewRelic = nrApp
		t.shutdown = append(t.shutdown, func() { nrApp.Shutdown(gracePeriod) })
	}

	if t.HTTP, err = NewHTTPMetrics(cfg); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

// Close stops everything Init started, last started first.
func (t *Telemetry) Close() {
	if t == nil {
		return
	}
	for i := len(t.shutdown) - 1; i >= 0; i-- {
		t.shutdown[i]()
	}
	t.shutdown = nil
}
