package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bodylog/bodylog/internal/client/auth"
	"github.com/bodylog/bodylog/internal/models"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.authService.Register(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Registration successful (user id: %s)\n", resp.UserID)
	c.io.Println("Use 'bodylog login' to start a session.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	authData, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Logged in as %s\n", authData.Email)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out. Local data is kept.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Not authenticated. Data is stored locally only.")
			return nil
		}
		return err
	}

	c.io.Printf("Logged in as: %s\n", session.Email)

	for _, dataset := range []models.DatasetKey{models.DatasetMale, models.DatasetFemale} {
		count, err := c.syncService.GetPendingSyncCount(ctx, dataset)
		if err != nil {
			return fmt.Errorf("failed to count pending changes: %w", err)
		}
		c.io.Printf("Pending changes (%s): %d\n", dataset, count)
	}

	return nil
}
