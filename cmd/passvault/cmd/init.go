package cmd

import (
	"passvault/cmd/passvault/cmd/auth"
	"passvault/cmd/passvault/cmd/vault"
)

func init() {
	rootCmd.AddCommand(uiCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.ResetRequestCmd)
	auth.AuthCmd.AddCommand(auth.ResetConfirmCmd)

	rootCmd.AddCommand(vault.VaultCmd)
	vault.VaultCmd.AddCommand(vault.ListCmd)
	vault.VaultCmd.AddCommand(vault.ShowCmd)
	vault.VaultCmd.AddCommand(vault.AddCmd)
	vault.VaultCmd.AddCommand(vault.UpdateCmd)
	vault.VaultCmd.AddCommand(vault.DeleteCmd)
}
