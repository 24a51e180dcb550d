package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophfund/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the current value untouched.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	ServerHTTPURL       *string         `json:"server_http_url"`
	Transport           *string         `json:"transport"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	CachePath           *string         `json:"cache_path"`
	PageSize            *int            `json:"page_size"`
	Locale              *string         `json:"locale"`
	DefaultCurrency     *string         `json:"default_currency"`
	Verbose             *bool           `json:"verbose"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
// Read or unmarshal errors panic.
func parseJson(cfg *Config, path string) {
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setIf(&cfg.ServerHTTPURL, jc.ServerHTTPURL)
	setIf(&cfg.Transport, jc.Transport)
	setIf(&cfg.CachePath, jc.CachePath)
	setIf(&cfg.PageSize, jc.PageSize)
	setIf(&cfg.Locale, jc.Locale)
	setIf(&cfg.DefaultCurrency, jc.DefaultCurrency)
	setIf(&cfg.Verbose, jc.Verbose)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
