package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/adapter"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/client"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/config"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/service"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	sessions := store.NewSessionStore(cfg.Storage.SessionFile)
	services := service.NewClientServices(sessions, backendAdapter, log)

	app := client.NewApp(services, sessions, os.Stdout, log)
	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
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
