package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/client/api"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a PassVault account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		email, err := promptLine("Email")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Repeat password")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		if err := app.API.Register(ctx, email, password); err != nil {
			app.Log.Debug("registration failed", "error", err)
			if detail := api.Detail(err); detail != "" {
				return fmt.Errorf("registration failed: %s", detail)
			}
			return fmt.Errorf("registration failed, please try again")
		}

		successMark.Println("✓ Account created. You can now sign in with `passvault auth login`.")
		return nil
	},
}
