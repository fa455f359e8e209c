package memory

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

// Dataset is a named collection that can be re-read from its source.
type Dataset interface {
	Name() string
	Len() int
	Reload(ctx context.Context) error
}

type ReloaderConfig struct {
	// Interval between background reloads. Zero disables them.
	Interval time.Duration `mapstructure:"interval" yaml:"interval" default:"0s"`
}

// Reloader loads every dataset concurrently and optionally keeps reloading
// them in the background.
type Reloader struct {
	datasets []Dataset
	interval time.Duration
	logger   log.Logger

	lastReload atomic.Int64
	initDone   atomic.Bool
}

func NewReloader(cfg ReloaderConfig, logger log.Logger, datasets ...Dataset) *Reloader {
	return &Reloader{
		datasets: datasets,
		interval: cfg.Interval,
		logger:   logger,
	}
}

// ReloadAll reloads every dataset in parallel. Datasets that fail keep
// their previous content; the first error is returned.
func (r *Reloader) ReloadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, ds := range r.datasets {
		ds := ds
		g.Go(func() error {
			start := time.Now()
			if err := ds.Reload(ctx); err != nil {
				return fmt.Errorf("reload %s: %w", ds.Name(), err)
			}
			r.logger.Debug("dataset loaded", "dataset", ds.Name(), "records", ds.Len(), "duration", time.Since(start).String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r.lastReload.Store(time.Now().Unix())
	return nil
}

// LastReload is the time of the last fully successful ReloadAll.
func (r *Reloader) LastReload() time.Time {
	ts := r.lastReload.Load()
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// Run blocks until ctx is done, reloading on every tick of the configured
// interval. It returns immediately when no interval is set.
func (r *Reloader) Run(ctx context.Context) error {
	if err := r.init(); err != nil {
		return fmt.Errorf("run dataset reloader: init: %w", err)
	}
	if r.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.ReloadAll(ctx); err != nil {
				r.logger.Error("background dataset reload failed", "err", err)
			}
		}
	}
}

func (r *Reloader) init() error {
	if r.initDone.Load() {
		return nil
	}
	r.initDone.Store(true)

	return r.registerStatsCallback()
}

func (r *Reloader) registerStatsCallback() error {
	const attrDataset = attribute.Key("dataset.name")

	meter := otel.Meter("github.com/goto/screener/internal/store/memory")
	records, err := meter.Int64ObservableGauge("screener.dataset.records")
	handleOtelErr(err)

	age, err := meter.Int64ObservableGauge("screener.dataset.reload_age_seconds")
	handleOtelErr(err)

	_, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			for _, ds := range r.datasets {
				o.ObserveInt64(records, int64(ds.Len()), metric.WithAttributes(attrDataset.String(ds.Name())))
			}
			if last := r.LastReload(); !last.IsZero() {
				o.ObserveInt64(age, int64(time.Since(last).Seconds()))
			}
			return nil
		},
		records,
		age,
	)

	return err
}

func handleOtelErr(err error) {
	if err != nil {
		otel.Handle(err)
	}
}
