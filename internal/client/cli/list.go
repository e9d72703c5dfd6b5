package cli

import (
	"context"
	"fmt"

	"github.com/bodylog/bodylog/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing dataset. Usage: bodylog list <male|female>")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}

	entries, err := c.dataService.ListEntries(ctx, dataset)
	if err != nil {
		return err
	}

	c.io.Printf("=== Entries (%s) ===\n", dataset)
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No entries found.")
		c.io.Println()
		c.io.Printf("Use 'bodylog add %s' to add your first entry.\n", dataset)
		return nil
	}

	profile := models.ProfileFor(dataset)

	c.io.Printf("Found %d entries:\n", len(entries))
	c.io.Println()

	for _, entry := range entries {
		c.io.Printf("%s", entry.Date)
		if entry.PendingSync {
			c.io.Printf(" (pending sync)")
		}
		c.io.Println()
		c.io.Printf("   ID: %s\n", entry.ID)
		for _, field := range profile.Fields {
			if value, ok := entry.Fields[field.Key]; ok {
				c.io.Printf("   %s: %.1f %s\n", field.Label, value, field.Unit)
			}
		}
		c.io.Println()
	}

	return nil
}
