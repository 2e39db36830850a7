package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/MKhiriev/clio/internal/client"
	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildInfo()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "clio: %v\n", err)
		os.Exit(2)
	}
	if cfg.App.UserAgent == config.DefaultUserAgent {
		cfg.App.UserAgent = buildInfo.UserAgent(config.DefaultUserAgent)
	}

	log := logger.NewClientLogger("clio", cfg.App.LogFile, cfg.App.LogLevel)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "clio: %v\n", err)
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
