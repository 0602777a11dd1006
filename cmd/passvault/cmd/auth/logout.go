package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		if err := app.Logout(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		successMark.Println("✓ Signed out.")
		return nil
	},
}
