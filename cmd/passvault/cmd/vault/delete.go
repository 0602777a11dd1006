package vault

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"passvault/internal/vault"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a password entry",
	Long:  `Delete an entry by ID. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
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

		item, err := app.API.GetItem(ctx, id)
		if err != nil {
			return wrapAPIErr(app, err, "load the password")
		}

		if !deleteYes {
			fmt.Printf("Delete %s (%s)? [y/N]: ", vault.DisplayName(item.URL), item.Username)
			var answer string
			fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.API.DeleteItem(ctx, id); err != nil {
			return wrapAPIErr(app, err, "delete the password")
		}

		successMark.Printf("✓ Deleted %s.\n", vault.DisplayName(item.URL))
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
