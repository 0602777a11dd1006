package vault

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"passvault/internal/vault"
)

var showReveal bool

var ShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single password entry",
	Long: `Show one entry by ID. The secret stays masked unless --reveal is
given.`,
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

		item, err := app.API.GetItem(ctx, id)
		if err != nil {
			return wrapAPIErr(app, err, "load the password")
		}

		password := "••••••••"
		if showReveal {
			password = item.Password
		}

		fmt.Printf("ID:       %d\n", item.ID)
		fmt.Printf("Site:     %s\n", vault.DisplayName(item.URL))
		fmt.Printf("URL:      %s\n", item.URL)
		fmt.Printf("Username: %s\n", item.Username)
		fmt.Printf("Password: %s\n", password)
		if item.Notes != "" {
			fmt.Printf("Notes:    %s\n", item.Notes)
		}
		return nil
	},
}

func init() {
	ShowCmd.Flags().BoolVar(&showReveal, "reveal", false, "print the password in clear text")
}
