// Package config loads runtime configuration for the gophfund CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables GOPHFUND_CLI_*, optionally from a .env file
//     named by -env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-w string   base URL of the backend HTTP API
//	-t string   transport, "grpc" or "http"
//	-i int      online status check interval (seconds)
//	-f string   path of the local SQLite cache
//	-L string   formatting locale
//	-v          verbose logging
//
// # JSON schema
//
// Intervals accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "server_http_url": "http://127.0.0.1:8080",
//	  "transport": "grpc",
//	  "online_check_interval": "3s",
//	  "request_timeout": "5s",
//	  "cache_path": "gophfund-cache.db",
//	  "locale": "ru-RU",
//	  "default_currency": "KGS",
//	  "verbose": false
//	}
package config
