package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/server"
	"github.com/dmitrijs2005/gophfund/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, sync, err := logging.NewProductionZapLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer sync()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
	}

}
