// Package cli implements the interactive command line client.
package cli

import (
	"fmt"

	"github.com/bodylog/bodylog/internal/client/auth"
	"github.com/bodylog/bodylog/internal/client/backup"
	"github.com/bodylog/bodylog/internal/client/data"
	"github.com/bodylog/bodylog/internal/client/iocli"
	"github.com/bodylog/bodylog/internal/client/sync"
	"github.com/bodylog/bodylog/internal/models"
)

type Cli struct {
	io            iocli.IO
	authService   *auth.Service
	dataService   data.Service
	syncService   sync.Service
	backupService *backup.Service
}

func New(io iocli.IO, authService *auth.Service, dataService data.Service, syncService sync.Service, backupService *backup.Service) *Cli {
	return &Cli{
		io:            io,
		authService:   authService,
		dataService:   dataService,
		syncService:   syncService,
		backupService: backupService,
	}
}

// parseDataset разбирает аргумент датасета
func parseDataset(arg string) (models.DatasetKey, error) {
	dataset := models.DatasetKey(arg)
	if !dataset.Valid() {
		return "", fmt.Errorf("unknown dataset: %s. Use: male or female", arg)
	}
	return dataset, nil
}

func PrintUsage() {
	fmt.Println("BodyLog Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bodylog [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: bodylog-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                    Register new user")
	fmt.Println("  login                       Login to server")
	fmt.Println("  logout                      Logout and drop local session")
	fmt.Println("  status                      Show session and pending changes")
	fmt.Println("  add <male|female>           Add a measurement entry")
	fmt.Println("  list <male|female>          List measurement entries")
	fmt.Println("  edit <male|female> <id>     Edit an entry")
	fmt.Println("  delete <male|female> <id>   Delete an entry")
	fmt.Println("  sync <male|female>          Synchronize with server")
	fmt.Println("  export <file>               Export all data to a JSON archive")
	fmt.Println("  import <file>               Import data from a JSON archive")
	fmt.Println("  insights <male|female>      Show weight trend analysis")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  bodylog register")
	fmt.Println("  bodylog add male")
	fmt.Println("  bodylog list male")
	fmt.Println("  bodylog sync male")
	fmt.Println("  bodylog insights male 78.5")
	fmt.Println("  bodylog --server https://example.com login")
}
