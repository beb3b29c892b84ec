package main

import (
	"context"
	"fmt"

	"github.com/dfcastellanos/clientes-api/internal/config"
	"github.com/dfcastellanos/clientes-api/internal/handler"
	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/seed"
	"github.com/dfcastellanos/clientes-api/internal/server"
	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("clientes-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg, log)

	if cfg.Seed.DemoData {
		if err := seed.Apply(ctx, services, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
