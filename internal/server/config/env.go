package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays GOPHFUND_* environment variables onto config. When
// dotenv names a file it is loaded first; variables already present in the
// process environment win over the file.
func parseEnv(config *Config, dotenv string) {

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil {
			panic(err)
		}
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
