package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-w string   HTTP bind address (e.g., ":8080")
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, or "memory"
//	-l float    HTTP requests per second
//	-L string   formatting locale (e.g., "ru-RU")
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name ("" disables presigning)
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-t int      presigned URL lifetime, minutes
//	-s string   YAML content file imported at startup
//	-v          verbose logging
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-w", "-a", "-d", "-l", "-L", "-u", "-p", "-b", "-g", "-e", "-t", "-s", "-v"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.Float64Var(&config.RateLimit, "l", config.RateLimit, "HTTP requests per second")
	fs.StringVar(&config.Locale, "L", config.Locale, "formatting locale")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	presignTTL := fs.Int("t", int(config.PresignTTL.Minutes()), "presigned URL lifetime (in minutes)")
	fs.StringVar(&config.SeedFile, "s", config.SeedFile, "content file imported at startup")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.PresignTTL = time.Duration(*presignTTL) * time.Minute
		}
	})
}
