package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file. Usage: bodylog export <file>")
	}
	path := args[0]

	data, err := c.backupService.ExportJSON(ctx)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	c.io.Printf("Exported to %s\n", path)

	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file. Usage: bodylog import <file>")
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	// Импорт затирает все локальные данные
	ok, err := c.io.Confirm("Importing replaces ALL local entries. Continue?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.backupService.ImportJSON(ctx, data); err != nil {
		return err
	}

	c.io.Printf("Imported %s\n", path)

	return nil
}
