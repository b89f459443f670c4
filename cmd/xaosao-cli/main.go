// Package main is the entry point for the xaosao-cli application.
// It initializes the root command and registers the wallet, booking, call
// and seeding sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/xaosao/xaosao-service/cmd/xaosao-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "xaosao-cli",
		Short: "Operator tooling for the xaosao backend",
		Long: `xaosao-cli is a command-line tool for operating the xaosao backend.
Supports manual wallet adjustments, wallet inspection, booking status
transitions, sweeping missed call sessions, expiring stale top-ups and
seeding companion-side data for local development.

Configuration is read from CONFIG_PATH (default configs/rest-app.yaml), with
the same environment overrides the REST API honors.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register wallet commands
	if err := commands.InitWalletCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize wallet commands: %w", err)
	}

	// Register booking status transition commands
	if err := commands.InitBookingCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize booking commands: %w", err)
	}

	// Register call and top-up maintenance commands
	if err := commands.InitCallCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize call commands: %w", err)
	}

	// Register seeding commands
	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}
