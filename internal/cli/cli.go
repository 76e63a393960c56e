package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dhenderson/gameday-events/internal/config"
	"github.com/dhenderson/gameday-events/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagRegistry string
	flagDryRun   bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gameday-announcer",
		Short: "Announce matchups between registry schools to a chat webhook",
		Long: `A one-shot job that checks the configured scoreboards for games where
both schools appear in the member registry, posts an announcement for each
new game to the chat webhook, and records announced game ids so reruns
stay quiet. Intended to be invoked by an external scheduler.`,
		SilenceUsage: true,
		RunE:         runAnnounce,
	}

	cmd.Flags().StringVar(&flagRegistry, "registry", "", "Path to the school registry file (JSON or YAML)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print announcements instead of posting")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("registry") //nolint:errcheck

	return cmd
}

// runAnnounce is the main command logic
func runAnnounce(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// .env is a local convenience; the scheduler sets real env vars
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", logger.Fields{"reason": err.Error()})
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	return Run(cfg, flagRegistry, flagDryRun)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
