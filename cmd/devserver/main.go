package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gymbro/internal/buildinfo"
	"github.com/dmitrijs2005/gymbro/internal/devserver"
	"github.com/dmitrijs2005/gymbro/internal/devserver/config"
	"github.com/dmitrijs2005/gymbro/internal/logging"
	"github.com/dmitrijs2005/gymbro/internal/telemetry"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(logging.Config{
		Backend:  cfg.LogBackend,
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	}, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	shutdown := telemetry.Setup(ctx, "gymbro-devserver", logger)
	defer func() { _ = shutdown(context.Background()) }()

	devserver.NewApp(cfg, logger).Run(ctx)
}
