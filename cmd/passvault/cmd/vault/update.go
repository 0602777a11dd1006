package vault

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/internal/vault"
)

var (
	updateURL      string
	updateUsername string
	updateNotes    string
	updatePassword bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a password entry",
	Long: `Update an entry. Only the fields given as flags change; everything
else keeps its stored value. Pass --password to be prompted for a new
secret; without it the stored secret is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry ID %q", args[0])
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		current, err := app.API.GetItem(ctx, id)
		if err != nil {
			return wrapAPIErr(app, err, "load the password")
		}

		req := vault.UpdateRequest{
			URL:      current.URL,
			Username: current.Username,
			Notes:    current.Notes,
		}
		if cmd.Flags().Changed("url") {
			req.URL = updateURL
		}
		if cmd.Flags().Changed("username") {
			req.Username = updateUsername
		}
		if cmd.Flags().Changed("notes") {
			req.Notes = updateNotes
		}
		if updatePassword {
			fmt.Print("New password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password := string(raw)
			if password == "" {
				return fmt.Errorf("the new password must not be empty")
			}
			req.Password = &password
		}

		item, err := app.API.UpdateItem(ctx, id, req)
		if err != nil {
			return wrapAPIErr(app, err, "save the password")
		}

		successMark.Printf("✓ Updated %s.\n", vault.DisplayName(item.URL))
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateURL, "url", "u", "", "new site URL")
	UpdateCmd.Flags().StringVarP(&updateUsername, "username", "n", "", "new username")
	UpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "new notes")
	UpdateCmd.Flags().BoolVarP(&updatePassword, "password", "p", false, "prompt for a new password")
}
