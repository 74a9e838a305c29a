package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/signalops/sigconsole/internal/client/api"
	"github.com/signalops/sigconsole/internal/client/config"
	"github.com/signalops/sigconsole/internal/client/console"
	"github.com/signalops/sigconsole/internal/client/iocli"
	"github.com/signalops/sigconsole/internal/client/session"
	"github.com/signalops/sigconsole/internal/client/storage/boltdb"
	"github.com/signalops/sigconsole/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger(*logLevel)
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// The controller is the client's token source and the client reports
	// expiry back to it, so the two are bound after construction.
	controller := session.NewController(boltStorage, logger)
	apiClient := api.NewClient(*serverURL, controller)
	apiClient.SetExpiryHandler(controller.Expire)
	controller.SetGateway(apiClient)

	if clientID, err := boltStorage.ClientID(ctx); err == nil {
		apiClient.SetClientID(clientID)
	} else {
		logger.Warn("client id unavailable", "error", err)
	}

	if err := controller.Boot(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	records := sync.NewService(apiClient, logger)
	ui := console.New(controller, records, apiClient, iocli.NewStdio(), logger)

	if err := ui.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("Signal Console\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
