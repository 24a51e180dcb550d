package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophfund/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both strings
// such as "15m" and integer nanoseconds. Absent keys leave the current
// value untouched.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string         `json:"database_dsn"`
	RateLimit        *float64        `json:"rate_limit"`
	RateBurst        *int            `json:"rate_burst"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	Locale           *string         `json:"locale"`
	DefaultCurrency  *string         `json:"default_currency"`
	S3RootUser       *string         `json:"s3_root_user"`
	S3RootPassword   *string         `json:"s3_root_password"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
	PresignTTL       *timex.Duration `json:"presign_ttl"`
	SeedFile         *string         `json:"seed_file"`
	Verbose          *bool           `json:"verbose"`
}

// parseJson overlays values from the JSON file at path onto config. An
// empty path loads nothing; unreadable or invalid files panic.
func parseJson(config *Config, path string) {

	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.RateLimit, c.RateLimit)
	set(&config.RateBurst, c.RateBurst)
	set(&config.Locale, c.Locale)
	set(&config.DefaultCurrency, c.DefaultCurrency)
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.SeedFile, c.SeedFile)
	set(&config.Verbose, c.Verbose)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.PresignTTL != nil {
		config.PresignTTL = c.PresignTTL.Duration
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
