package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing dataset. Usage: bodylog sync <male|female>")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'bodylog login' first")
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Reconcile(ctx, session.UserID, session.AccessToken, dataset)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Skipped {
		c.io.Println("Another synchronization is already running.")
		return nil
	}

	c.io.Printf("Pushed to server:   %d entries\n", result.PushedEntries)
	c.io.Printf("Processed deletes:  %d\n", result.DeletedEntries)
	c.io.Printf("Pulled from server: %d entries\n", result.PulledEntries)
	c.io.Println()

	if result.UsedLocal {
		c.io.Println("Server is unreachable, showing local data. Changes will be pushed later.")
	} else {
		c.io.Println("Your data is now synchronized with the server.")
	}

	return nil
}
