package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/cmd/passvault/cmd/types"
	"passvault/internal/client"
	"passvault/internal/tui"
)

var resetToken string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	Long: `Open the full-screen terminal UI.

The --reset-token flag is the equivalent of opening a password-reset
link: the UI starts on the confirm-reset screen with the token filled
in. Passing the flag with an empty value shows the invalid-link error,
exactly as a broken link would.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUI(cmd, resetToken, cmd.Flags().Changed("reset-token"))
	},
}

func runUI(cmd *cobra.Command, token string, resetRequested bool) error {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return fmt.Errorf("application is not initialized")
	}
	return tui.Run(app.API, app.Session, app.Config, app.Log, token, resetRequested)
}

func init() {
	uiCmd.Flags().StringVar(&resetToken, "reset-token", "", "password-reset token from the recovery email")
}
