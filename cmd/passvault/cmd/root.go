package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passvault/cmd/passvault/cmd/types"
	"passvault/internal/client"
	"passvault/internal/client/config"
	"passvault/internal/logging"
)

var (
	serverURL string
	logFile   *os.File
)

var rootCmd = &cobra.Command{
	Use:   "passvault",
	Short: "PassVault - password manager client",
	Long: `PassVault is a client for the PassVault password service.

Run it without arguments for the interactive terminal UI, or use the
auth and vault subcommands for scripting. Passwords are decrypted by
the server; this client never stores them on disk.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Bare invocation opens the terminal UI.
		return runUI(cmd, "", false)
	},
}

func Execute() {
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupApp loads configuration, points the logger at a file (stdout
// belongs to command output and the UI), builds the application and
// stores it in the command context for subcommands to pick up.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	logFile, err = os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	log := logging.New(cfg.Env, logFile)

	app := client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "PassVault server URL")
}
