// Package httpapi serves the campaign catalog as JSON over HTTP. The
// listing route is the one the site frontend pages through.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/cards"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/services"
	"golang.org/x/time/rate"
)

// Catalog is the read side the handlers need.
type Catalog interface {
	ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error)
	GetCampaign(ctx context.Context, slug string) (*services.CampaignView, error)
	Featured(ctx context.Context) ([]models.CampaignSummary, error)
	Urgent(ctx context.Context) ([]models.CampaignSummary, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Cards(ctx context.Context, kind cards.Kind) ([]cards.Card, error)
}

// Options tune the server. Zero values disable rate limiting and use a
// five second shutdown.
type Options struct {
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address string
	catalog Catalog
	logger  logging.Logger
	opts    Options
}

func NewHTTPServer(address string, l logging.Logger, catalog Catalog, opts Options) *HTTPServer {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	return &HTTPServer{
		address: address,
		catalog: catalog,
		logger:  l.With("module", "http_server"),
		opts:    opts,
	}
}

// Handler returns the routed API with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/campaigns", s.listCampaigns)
	mux.HandleFunc("GET /api/campaigns/featured", s.featured)
	mux.HandleFunc("GET /api/campaigns/urgent", s.urgent)
	mux.HandleFunc("GET /api/campaigns/{slug}", s.getCampaign)
	mux.HandleFunc("GET /api/categories", s.categories)
	mux.HandleFunc("GET /api/cards", s.cards)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})

	var h http.Handler = mux
	if s.opts.RateLimit > 0 {
		burst := max(s.opts.RateBurst, 1)
		h = rateLimit(rate.NewLimiter(rate.Limit(s.opts.RateLimit), burst), h)
	}
	return accessLog(s.logger, h)
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
