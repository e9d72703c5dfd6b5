package cli

import (
	"context"
	"fmt"

	"github.com/bodylog/bodylog/internal/models"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: bodylog edit <male|female> <id>")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	profile := models.ProfileFor(dataset)

	c.io.Printf("=== Edit entry %s ===\n", id)
	c.io.Println("Press Enter to keep a value, enter '-' to clear it.")
	c.io.Println()

	entries, err := c.dataService.ListEntries(ctx, dataset)
	if err != nil {
		return err
	}

	var current *models.Entry
	for i := range entries {
		if entries[i].ID == id {
			current = &entries[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("entry not found: %s", id)
	}

	rawValues := make(map[string]string)
	for _, field := range profile.Fields {
		prompt := fmt.Sprintf("%s (%s)", field.Label, field.Unit)
		if value, ok := current.Fields[field.Key]; ok {
			prompt += fmt.Sprintf(" [%.1f]", value)
		}

		input, err := c.io.ReadInput(prompt + ": ")
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", field.Key, err)
		}

		switch input {
		case "":
			// Оставляем как есть
		case "-":
			rawValues[field.Key] = ""
		default:
			rawValues[field.Key] = input
		}
	}

	if len(rawValues) == 0 {
		c.io.Println("Nothing to change.")
		return nil
	}

	updated, err := c.dataService.EditEntry(ctx, dataset, id, rawValues)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("entry not found: %s", id)
	}

	c.io.Println()
	c.io.Printf("Entry %s updated\n", updated.ID)
	if updated.PendingSync {
		c.io.Println("Server is unreachable, the change will be pushed on the next sync.")
	}

	return nil
}
