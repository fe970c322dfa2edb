// nirmanctl provisions the DynamoDB tables and seeds portal users.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"nirman/internal/config"
	"nirman/internal/infrastructure/database"
	"nirman/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	configPath string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "nirmanctl",
	Short:         "Operator tooling for the Nirman work-progress service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(logger.Config{Level: level, Format: "console"})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(usersCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect loads the config and opens a DynamoDB client bounded by --timeout.
func connect(cmd *cobra.Command) (context.Context, context.CancelFunc, *config.Config, *dynamodb.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		cancel()
		return nil, nil, nil, nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return ctx, cancel, cfg, ddb, nil
}
