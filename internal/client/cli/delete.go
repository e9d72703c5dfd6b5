package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: bodylog delete <male|female> <id>")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	ok, err := c.io.Confirm(fmt.Sprintf("Delete entry %s?", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.dataService.DeleteEntry(ctx, dataset, id); err != nil {
		return err
	}

	c.io.Printf("Entry %s deleted\n", id)

	return nil
}
