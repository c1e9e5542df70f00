package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gymbro/internal/buildinfo"
	"github.com/dmitrijs2005/gymbro/internal/client/api"
	"github.com/dmitrijs2005/gymbro/internal/client/cli"
	"github.com/dmitrijs2005/gymbro/internal/client/config"
	"github.com/dmitrijs2005/gymbro/internal/client/services"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
	"github.com/dmitrijs2005/gymbro/internal/client/storage"
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
	}, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	shutdown := telemetry.Setup(ctx, "gymbro-cli", logger)
	defer func() { _ = shutdown(context.Background()) }()

	store, err := storage.Open(ctx, cfg.StorageDriver, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	sess := session.New(store, logger)

	client, err := api.New(cfg.BaseURL, cfg.RequestTimeout, sess, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	svc := cli.Services{
		Auth:      services.NewAuthService(client, sess, logger),
		Tracking:  services.NewTrackingService(client),
		Profile:   services.NewProfileService(client, sess),
		Dashboard: services.NewDashboardService(client),
	}

	cli.NewApp(svc, sess, logger, os.Stdin, os.Stdout).Run(ctx)
}
