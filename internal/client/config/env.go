package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays GOPHFUND_CLI_* variables onto cfg, loading the dotenv
// file first when one is named.
func parseEnv(cfg *Config, dotenv string) {

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil {
			panic(err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
