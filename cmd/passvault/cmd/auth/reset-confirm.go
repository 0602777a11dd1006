package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirmToken string

var ResetConfirmCmd = &cobra.Command{
	Use:   "reset-confirm",
	Short: "Set a new password using a reset token",
	Long: `Complete a password reset.

The token comes from the recovery email sent by reset-request. Pass it
with --token or enter it at the prompt.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		token := resetConfirmToken
		if token == "" {
			token, err = promptLine("Reset token")
			if err != nil {
				return err
			}
		}
		if token == "" {
			return fmt.Errorf("a reset token is required")
		}

		password, err := promptPassword("New password")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Repeat new password")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		if err := app.API.ConfirmPasswordReset(ctx, token, password); err != nil {
			app.Log.Debug("password reset failed", "error", err)
			return fmt.Errorf("reset failed: the token is invalid or expired, or the password is not valid")
		}

		successMark.Println("✓ Password updated. Sign in with your new password.")
		return nil
	},
}

func init() {
	ResetConfirmCmd.Flags().StringVar(&resetConfirmToken, "token", "", "reset token from the recovery email")
}
