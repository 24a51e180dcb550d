package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/flagx"
)

const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

// DefaultPageSize is the slider page size of the web frontend.
const DefaultPageSize = 30

// Config holds runtime settings for the gophfund CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - ServerHTTPURL: base URL of the backend HTTP API.
//   - Transport: which of the two the client talks to.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - RequestTimeout: deadline of a single server call.
//   - CachePath: SQLite file holding everything seen so far.
//   - PageSize: campaigns requested per "load more".
//
// Units: durations are time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string        `env:"GOPHFUND_CLI_SERVER_ADDR"`
	ServerHTTPURL       string        `env:"GOPHFUND_CLI_SERVER_URL"`
	Transport           string        `env:"GOPHFUND_CLI_TRANSPORT"`
	OnlineCheckInterval time.Duration `env:"GOPHFUND_CLI_ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"GOPHFUND_CLI_REQUEST_TIMEOUT"`
	CachePath           string        `env:"GOPHFUND_CLI_CACHE_PATH"`
	PageSize            int           `env:"GOPHFUND_CLI_PAGE_SIZE"`
	Locale              string        `env:"GOPHFUND_CLI_LOCALE"`
	DefaultCurrency     string        `env:"GOPHFUND_CLI_DEFAULT_CURRENCY"`
	Verbose             bool          `env:"GOPHFUND_CLI_VERBOSE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ServerHTTPURL = "http://127.0.0.1:8080"
	c.Transport = TransportGRPC
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 5 * time.Second
	c.CachePath = "gophfund-cache.db"
	c.PageSize = DefaultPageSize
	c.Locale = common.DefaultLocale
	c.DefaultCurrency = common.DefaultCurrency
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	files := flagx.ParseConfigFiles(args)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, files.JSON)
	parseEnv(cfg, files.Env)
	parseFlags(cfg, args)
	return cfg
}
