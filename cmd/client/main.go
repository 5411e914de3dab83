package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-foodie/internal/adapter"
	"github.com/MKhiriev/go-foodie/internal/client"
	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/service"
	"github.com/MKhiriev/go-foodie/internal/session"
	"github.com/MKhiriev/go-foodie/internal/store"
	"github.com/MKhiriev/go-foodie/internal/tui"
	"github.com/MKhiriev/go-foodie/internal/validators"
	"github.com/MKhiriev/go-foodie/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		// the log file location is part of the config
		logger.NewLogger("foodie-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("foodie-client", cfg.Log.Path, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sess := session.New()
	services := service.NewClientServices(serverAdapter, localStorage, sess, validators.NewRegistrationValidator(), log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, sess, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	err = app.Run(ctx)
	if closeErr := localStorage.Close(); closeErr != nil {
		log.Err(closeErr).Msg("close local storage")
	}
	if err != nil {
		log.Error().Err(err).Msg("client run error")
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
