package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"passvault/internal/vault"
)

var (
	listQuery  string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved passwords",
	Long: `List the vault, optionally filtered with --query. The filter matches
usernames, URLs and notes, the same as the search box in the UI.
Secrets are never included in the listing.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := callCtx(cmd, app)
		defer cancel()

		items, err := app.API.ListItems(ctx, listQuery)
		if err != nil {
			return wrapAPIErr(app, err, "load your passwords")
		}

		switch listFormat {
		case "json":
			return printItemsJSON(items)
		case "table":
			return printItemsTable(items)
		default:
			return printItemsSimple(items)
		}
	},
}

func printItemsSimple(items []vault.Item) error {
	if len(items) == 0 {
		fmt.Println("No saved passwords.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%d. %s (%s)\n", item.ID, vault.DisplayName(item.URL), item.Username)
	}
	return nil
}

func printItemsTable(items []vault.Item) error {
	if len(items) == 0 {
		fmt.Println("No saved passwords.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSite\tUsername\tURL\t")
	fmt.Fprintln(w, "---\t---\t---\t---\t")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			item.ID, vault.DisplayName(item.URL), item.Username, item.URL)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d\n", len(items))
	return nil
}

func printItemsJSON(items []vault.Item) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

func init() {
	ListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by username, url or notes")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json)")
}
