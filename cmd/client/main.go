package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bodylog/bodylog/internal/client/api"
	"github.com/bodylog/bodylog/internal/client/auth"
	"github.com/bodylog/bodylog/internal/client/backup"
	"github.com/bodylog/bodylog/internal/client/cli"
	"github.com/bodylog/bodylog/internal/client/data"
	"github.com/bodylog/bodylog/internal/client/iocli"
	"github.com/bodylog/bodylog/internal/client/netmon"
	"github.com/bodylog/bodylog/internal/client/storage/boltdb"
	"github.com/bodylog/bodylog/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "bodylog-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
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

	apiClient := api.NewClient(*serverURL)

	// Стартовое состояние монитора дает разовый probe, дальше доступность
	// обновляется исходами реальных запросов через StatusReporter
	monitor := netmon.New(logger, probeServer(ctx, *serverURL))
	apiClient.SetStatusReporter(monitor)

	authService := auth.NewService(apiClient, boltStorage)
	dataService := data.NewService(apiClient, boltStorage, boltStorage, authService, monitor, logger)
	syncService := sync.NewService(apiClient, boltStorage, boltStorage, logger)
	backupService := backup.NewService(boltStorage)

	c := cli.New(iocli.NewStdio(), authService, dataService, syncService, backupService)
	c.Run(ctx, command, args[1:])
}

// probeServer проверяет доступность сервера через health endpoint
func probeServer(ctx context.Context, serverURL string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, serverURL+"/api/v1/health", nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode == http.StatusOK
}

func printVersion() {
	fmt.Printf("Bodylog Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
