package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config, args []string) {
	// Filter args to include only those handled here.
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-t", "-i", "-f", "-page-size", "-L", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.ServerHTTPURL, "w", cfg.ServerHTTPURL, "base URL of the HTTP API")
	fs.StringVar(&cfg.Transport, "t", cfg.Transport, "transport: grpc or http")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.CachePath, "f", cfg.CachePath, "local cache file")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "campaigns per page")
	fs.StringVar(&cfg.Locale, "L", cfg.Locale, "formatting locale")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
