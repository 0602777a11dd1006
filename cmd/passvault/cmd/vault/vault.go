// Package vault holds the password commands: list, show, add, update
// and delete.
package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/passvault/cmd/types"
	"passvault/internal/client"
	"passvault/internal/client/api"
)

// VaultCmd is the parent command for password operations.
var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage saved passwords",
	Long:  `List, inspect, add, update and delete the passwords in your vault.`,
}

var successMark = color.New(color.FgGreen)

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}

func callCtx(cmd *cobra.Command, app *client.App) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), app.Config.RequestTimeout)
}

// wrapAPIErr turns gateway failures into user-facing errors. A 401
// additionally drops the stored session so the next command starts
// from a clean login.
func wrapAPIErr(app *client.App, err error, action string) error {
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := app.Logout(); clearErr != nil {
			app.Log.Warn("clearing session", "error", clearErr)
		}
		return fmt.Errorf("your session has expired, sign in with `passvault auth login`")
	}
	app.Log.Debug(action+" failed", "error", err)
	if detail := api.Detail(err); detail != "" {
		return fmt.Errorf("could not %s: %s", action, detail)
	}
	return fmt.Errorf("could not %s, please try again", action)
}
