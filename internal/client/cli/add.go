package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bodylog/bodylog/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing dataset. Usage: bodylog add <male|female>")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}

	profile := models.ProfileFor(dataset)

	c.io.Printf("=== New entry (%s) ===\n", dataset)
	c.io.Println()

	today := time.Now().Format("2006-01-02")
	date, err := c.io.ReadInput(fmt.Sprintf("Date [%s]: ", today))
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if date == "" {
		date = today
	}

	// Пустой ввод пропускает поле
	rawValues := make(map[string]string, len(profile.Fields))
	for _, field := range profile.Fields {
		value, err := c.io.ReadInput(fmt.Sprintf("%s (%s): ", field.Label, field.Unit))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", field.Key, err)
		}
		rawValues[field.Key] = value
	}

	entry, err := c.dataService.AddEntry(ctx, dataset, date, rawValues)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Entry %s saved for %s\n", entry.ID, entry.Date)
	if entry.PendingSync {
		c.io.Println("Server is unreachable, the entry will be pushed on the next sync.")
	}

	return nil
}
