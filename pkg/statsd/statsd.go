package statsd

import (
	"fmt"
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

//go:generate mockery --name=Client -r --case underscore --with-expecter --structname StatsdClient --filename statsd_client.go --output=./mocks
type Client interface {
	Incr(name string, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
	Gauge(name string, value float64, tags []string, rate float64) error
	Close() error
}

// Reporter publishes metrics to a statsd agent. A nil Reporter or one
// created from a disabled Config drops every metric.
type Reporter struct {
	client Client
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return &Reporter{logger: logger, config: cfg}, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, fmt.Errorf("init statsd client: %w", err)
	}

	return NewReporter(logger, cfg, client), nil
}

func NewReporter(logger log.Logger, cfg Config, client Client) *Reporter {
	return &Reporter{client: client, logger: logger, config: cfg}
}

// Close closes statsd connection
func (sd *Reporter) Close() error {
	if sd == nil || sd.client == nil {
		return nil
	}
	return sd.client.Close()
}

// Incr returns a increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return sd.metric(name, func(c Client, name string, tags []string, rate float64) error {
		return c.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return sd.metric(name, func(c Client, name string, tags []string, rate float64) error {
		return c.Timing(name, value, tags, rate)
	})
}

func (sd *Reporter) Gauge(name string, value float64) *Metric {
	return sd.metric(name, func(c Client, name string, tags []string, rate float64) error {
		return c.Gauge(name, value, tags, rate)
	})
}

func (sd *Reporter) metric(name string, send func(c Client, name string, tags []string, rate float64) error) *Metric {
	m := &Metric{name: name, rate: 1}
	if sd != nil {
		m.logger = sd.logger
		m.rate = sd.config.SamplingRate
		m.withInfluxTag = sd.config.WithInfluxTagFormat
	}
	m.publishFunc = func(name string, tags []string, rate float64) error {
		if sd == nil || sd.client == nil {
			return nil
		}
		return send(sd.client, name, tags, rate)
	}
	return m
}
