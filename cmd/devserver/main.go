package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-foodie/internal/config"
	"github.com/MKhiriev/go-foodie/internal/crypto"
	"github.com/MKhiriev/go-foodie/internal/devserver"
	"github.com/MKhiriev/go-foodie/internal/handler"
	"github.com/MKhiriev/go-foodie/internal/logger"
	"github.com/MKhiriev/go-foodie/internal/server"
	"github.com/MKhiriev/go-foodie/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("foodie-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Dur("token_duration", cfg.TokenDuration).Msg("received configs")

	backend := devserver.NewBackend(crypto.NewPasswordHasher(), validators.NewRegistrationValidator())
	if err = devserver.Seed(context.Background(), backend); err != nil {
		log.Fatal().Err(err).Msg("error seeding demo data")
	}
	log.Info().Str("password", devserver.DemoPassword).Msg("demo accounts: owner@pizza.io, chef@curry.io, hello@noodle.io (admins), jane@mail.io (customer)")

	handlers, err := handler.NewHandlers(backend, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
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
