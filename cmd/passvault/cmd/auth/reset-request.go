package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ResetRequestCmd = &cobra.Command{
	Use:   "reset-request [email]",
	Short: "Request a password-reset email",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		var email string
		if len(args) == 1 {
			email = args[0]
		} else {
			email, err = promptLine("Email")
			if err != nil {
				return err
			}
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		if err := app.API.RequestPasswordReset(ctx, email); err != nil {
			app.Log.Debug("reset request failed", "error", err)
			return fmt.Errorf("could not request a reset, please try again")
		}

		// Deliberately ambiguous: the answer never reveals whether the
		// address has an account.
		fmt.Println("If an account exists for that address, a reset email is on its way.")
		fmt.Println("Finish with: passvault auth reset-confirm")
		return nil
	},
}
