package main

import (
	"fmt"

	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/client"
	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/service"
	"github.com/sammirack/admin-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("admin-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote client")
	}
	identity := adapter.NewHTTPIdentityProvider(cfg.Adapter, cfg.App, log)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	channel := broadcast.NewHub().Channel(log)
	services := service.NewClientServices(cfg.Scheduler, storages, remote, identity, channel, log)

	app, err := client.NewApp(services, channel, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
