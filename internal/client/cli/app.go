package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/client/cache"
	"github.com/dmitrijs2005/gophfund/internal/client/client"
	"github.com/dmitrijs2005/gophfund/internal/client/config"
	"github.com/dmitrijs2005/gophfund/internal/client/cursor"
	"github.com/dmitrijs2005/gophfund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophfund/internal/client/services"
	"github.com/dmitrijs2005/gophfund/internal/listing"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/progress"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// catalog is the part of services.CatalogService the CLI uses.
type catalog interface {
	cursor.Fetcher
	Online() bool
	Ping(ctx context.Context) error
	Campaign(ctx context.Context, slug string) (*models.CampaignDetail, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Preferences(ctx context.Context) metadata.Preferences
	SavePreferences(ctx context.Context, p metadata.Preferences) error
	CachedCount(ctx context.Context) (int, error)
	ClearCache(ctx context.Context) error
	Close() error
}

type App struct {
	config    *config.Config
	catalog   catalog
	cache     *cache.Cache
	cursor    *cursor.Cursor
	formatter *progress.Formatter
	logger    logging.Logger

	filter   models.Filter
	category string
	search   string
	sort     listing.SortBy
	pos      int

	// resync is set by the watcher when the server comes back and consumed
	// by the REPL goroutine.
	resync atomic.Bool

	width func() int
}

// NewApp opens the local cache and connects the configured transport.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	formatter, err := progress.NewFormatter(c.Locale, c.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("formatter init error: %w", err)
	}

	db, err := cache.Open(ctx, c.CachePath)
	if err != nil {
		return nil, fmt.Errorf("cache init error: %w", err)
	}

	var remote client.Client
	switch c.Transport {
	case config.TransportHTTP:
		remote = client.NewHTTPClient(c.ServerHTTPURL, c.RequestTimeout, nil)
	default:
		remote, err = client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("client init error: %w", err)
		}
	}

	svc := services.NewCatalogService(remote, db.Campaigns, db.Metadata, logger.With("module", "catalog"))

	app := newApp(c, svc, formatter, logger)
	app.cache = db
	return app, nil
}

func newApp(c *config.Config, cat catalog, f *progress.Formatter, logger logging.Logger) *App {
	return &App{
		config:    c,
		catalog:   cat,
		cursor:    cursor.New(cat, models.DefaultFilter, cursor.WithPageSize(c.PageSize)),
		formatter: f,
		logger:    logger,
		filter:    models.DefaultFilter,
		sort:      listing.SortImpact,
		width:     terminalWidth,
	}
}

func (a *App) Close() error {
	a.cursor.Close()
	err := a.catalog.Close()
	if a.cache != nil {
		err = errors.Join(err, a.cache.Close())
	}
	return err
}

func (a *App) mode() Mode {
	if a.catalog.Online() {
		return ModeOnline
	}
	return ModeOffline
}

// Run restores the saved browsing state, loads the first page and serves
// the REPL on stdin until the user leaves.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to gophfund CLI (type 'help' for commands)")

	a.restorePreferences(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if err := a.cursor.SetFilter(ctx, a.filter); err != nil {
		a.reportError(err)
	} else {
		a.printScreen()
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

// StartOnlineStatusWatcher pings the server every interval and reports mode
// changes until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := a.mode()
	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			_ = a.catalog.Ping(pingCtx)
			cancel()

			if m := a.mode(); m != last {
				last = m
				a.logger.Info(ctx, "connectivity changed", "mode", m)
				printlnFn(fmt.Sprintf("Switched to %s mode", m))
				if m == ModeOnline {
					a.resync.Store(true)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// Resync reloads the current filter from the first page once after the
// server becomes reachable again, so a list exhausted from the cache picks
// up what the server has.
func (a *App) Resync(ctx context.Context) error {
	if !a.resync.CompareAndSwap(true, false) {
		return nil
	}

	printlnFn(fmt.Sprintf("Back online, reloading %s", a.filter))
	a.pos = 0
	if err := a.cursor.SetFilter(ctx, a.filter); err != nil {
		a.reportError(err)
		return err
	}
	a.printScreen()
	return nil
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s %s)", a.mode(), a.filter)
}

func (a *App) restorePreferences(ctx context.Context) {
	p := a.catalog.Preferences(ctx)
	if p.Filter != "" {
		a.filter = models.ParseFilter(p.Filter)
	}
	a.category = p.Category
	a.search = p.Search
	a.sort = listing.ParseSortBy(p.Sort)
}

func (a *App) savePreferences(ctx context.Context) {
	p := a.catalog.Preferences(ctx)
	p.Filter = string(a.filter)
	p.Category = a.category
	p.Search = a.search
	p.Sort = string(a.sort)
	if err := a.catalog.SavePreferences(ctx, p); err != nil {
		a.logger.Warn(ctx, "cannot save preferences", "error", err)
	}
}
