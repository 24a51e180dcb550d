// Package server wires the storage backend, the catalog services and both
// transports, and runs them until a signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/progress"
	"github.com/dmitrijs2005/gophfund/internal/server/config"
	"github.com/dmitrijs2005/gophfund/internal/server/httpapi"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophfund/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophfund/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	catalog     *services.CatalogService
	importer    *services.ImportService
}

// NewApp opens storage and builds the services. The caller owns the
// returned App and must call Close.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	rm, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	formatter, err := progress.NewFormatter(c.Locale, c.DefaultCurrency)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("formatter init error: %w", err)
	}

	var media services.MediaResolver
	if ms := services.NewMediaService(c); ms.Enabled() {
		media = ms
	}

	return &App{
		config:      c,
		logger:      logger,
		repomanager: rm,
		catalog:     services.NewCatalogService(rm, media, formatter, logger.With("module", "catalog")),
		importer:    services.NewImportService(rm, logger.With("module", "importer")),
	}, nil
}

func (app *App) Close() error {
	return app.repomanager.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// seed imports the configured content file, if any.
func (app *App) seed(ctx context.Context) error {
	if app.config.SeedFile == "" {
		return nil
	}

	f, err := os.Open(app.config.SeedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	if _, err := app.importer.Import(ctx, f); err != nil {
		return fmt.Errorf("seed %s: %w", app.config.SeedFile, err)
	}
	return nil
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or
// either server fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.seed(ctx); err != nil {
		return err
	}

	httpServer := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.catalog, httpapi.Options{
		RateLimit:       app.config.RateLimit,
		RateBurst:       app.config.RateBurst,
		ShutdownTimeout: app.config.ShutdownTimeout,
	})
	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.catalog)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return grpcServer.Run(gctx) })

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}
