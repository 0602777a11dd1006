package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to PassVault",
	Long: `Authenticate against the PassVault server.

The session token is stored locally so vault commands work without
signing in again.`,
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

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		token, err := app.API.Login(ctx, email, password)
		if err != nil {
			app.Log.Debug("login failed", "error", err)
			// Credential failures and transport failures read the same;
			// nothing here should confirm whether the account exists.
			return fmt.Errorf("incorrect email or password")
		}

		if err := app.Session.SaveToken(token); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		app.API.SetToken(token)

		successMark.Println("✓ Signed in.")
		return nil
	},
}
