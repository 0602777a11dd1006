package vault

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/internal/vault"
)

var (
	addURL      string
	addUsername string
	addPassword string
	addNotes    string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a password entry",
	Long: `Add an entry to the vault. URL and username come from flags; the
password is prompted for when --password is not given, so it stays out
of the shell history.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if addURL == "" || addUsername == "" {
			return fmt.Errorf("--url and --username are required")
		}

		password := addPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = string(raw)
		}
		if password == "" {
			return fmt.Errorf("a password is required")
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		item, err := app.API.CreateItem(ctx, vault.CreateRequest{
			URL:      addURL,
			Username: addUsername,
			Password: password,
			Notes:    addNotes,
		})
		if err != nil {
			return wrapAPIErr(app, err, "save the password")
		}

		successMark.Printf("✓ Saved %s (ID %d).\n", vault.DisplayName(item.URL), item.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addURL, "url", "u", "", "site URL (must start with http:// or https://)")
	AddCmd.Flags().StringVarP(&addUsername, "username", "n", "", "username or email for the site")
	AddCmd.Flags().StringVarP(&addPassword, "password", "p", "", "password (prompted when omitted)")
	AddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
}
