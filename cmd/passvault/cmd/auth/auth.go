// Package auth holds the account commands: login, register, logout
// and the two halves of the password-reset flow.
package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/cmd/passvault/cmd/types"
	"passvault/internal/client"
)

// AuthCmd is the parent command for account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account",
	Long:  `Sign in, register, sign out and reset a forgotten password.`,
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

func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	var value string
	if _, err := fmt.Scanln(&value); err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(password), nil
}
