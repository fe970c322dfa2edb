package main

import (
	"fmt"

	"nirman/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the DynamoDB tables",
}

// tablesCreateCmd is idempotent: existing tables are left alone.
var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the proposals, users and counters tables",
	Args:  cobra.NoArgs,
	RunE:  runTablesCreate,
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
}

func runTablesCreate(cmd *cobra.Command, _ []string) error {
	ctx, cancel, cfg, ddb, err := connect(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := database.EnsureTables(ctx, ddb, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(created) == 0 {
		fmt.Fprintln(out, "all tables already exist")
		return nil
	}
	for _, name := range created {
		fmt.Fprintf(out, "created %s\n", name)
	}
	return nil
}
