package telemetry

import (
	"errors"
	"fmt"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

var errMissingLicense = errors.New("new relic is enabled without a license key")

type NewRelicConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled" default:"false"`
	LicenseKey string `yaml:"licensekey" mapstructure:"licensekey" default:""`
}

func initNewRelicMonitor(cfg Config, logger log.Logger) (*newrelic.Application, error) {
	if !cfg.NewRelic.Enabled {
		logger.Info("new relic monitoring is disabled")
		return nil, nil
	}
	if cfg.NewRelic.LicenseKey == "" {
		return nil, errMissingLicense
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{
				"environment": cfg.Environment,
				"version":     cfg.AppVersion,
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init new relic monitor: %w", err)
	}

	logger.Info("new relic monitoring is enabled", "app", cfg.AppName, "environment", cfg.Environment)
	return app, nil
}
