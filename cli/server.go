package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/goto/screener/core/product"
	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/core/task"
	"github.com/goto/screener/internal/data"
	"github.com/goto/screener/internal/server"
	"github.com/goto/screener/internal/store/memory"
	"github.com/goto/screener/pkg/statsd"
	"github.com/goto/screener/pkg/telemetry"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run screener server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ screener server start
			$ screener server start -c ./config.yaml
			$ screener server reload
		`),
	}

	cmd.AddCommand(
		serverStartCommand(cfg),
		serverReloadCommand(cfg),
	)

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 8080",
		Example: "screener server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	return c
}

func serverReloadCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "reload",
		Short: "Reload every dataset of a running server",
		Example: heredoc.Doc(`
			$ screener server reload
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			reloadedAt, err := clnt.Reload(cmd.Context())
			if err != nil {
				return err
			}

			spinner.Stop()
			fmt.Println(term.Greenf("datasets reloaded at %s", reloadedAt.Format(timeLayout)))
			return nil
		},
	}

	return c
}

func runServer(ctx context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("screener starting", "version", Version)

	cfg.Telemetry.AppVersion = Version
	tel, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer tel.Close()

	statsdReporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		return err
	}
	defer func() {
		if err := statsdReporter.Close(); err != nil {
			logger.Error("close statsd reporter", "err", err)
		}
	}()

	stockRepository := memory.NewStockRepository(datasetFile(cfg.Dataset.Stocks, data.Stocks))
	productRepository := memory.NewProductRepository(datasetFile(cfg.Dataset.Products, data.Products))
	taskRepository := memory.NewTaskRepository(datasetFile(cfg.Dataset.Tasks, data.Tasks))

	reloader := memory.NewReloader(cfg.Reload, logger, stockRepository, productRepository, taskRepository)
	if err := reloader.ReloadAll(ctx); err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}
	logger.Info("datasets loaded",
		"stocks", stockRepository.Len(),
		"products", productRepository.Len(),
		"tasks", taskRepository.Len(),
	)

	deps := server.Deps{
		Logger:         logger,
		NewRelic:       tel.NewRelic,
		StatsdReporter: statsdReporter,
		HTTPMetrics:    tel.HTTP,
		StockService:   stock.NewService(stock.ServiceDeps{Repository: stockRepository}),
		ProductService: product.NewService(product.ServiceDeps{Repository: productRepository}),
		TaskService:    task.NewService(task.ServiceDeps{Repository: taskRepository}),
		Reloader:       reloader,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reloader.Run(ctx)
	})
	g.Go(func() error {
		return server.Serve(ctx, cfg.Service, deps)
	})
	return g.Wait()
}

func datasetFile(path string, embedded []byte) memory.File {
	return memory.File{Path: path, Embedded: embedded}
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}
