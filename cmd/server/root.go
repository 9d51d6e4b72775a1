package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ewallet",
	Short: "eWallet - provider and client wallet API",
	Long: `eWallet serves the provider, client and admin API over a core database
and a separate ledger database.

Run 'ewallet serve' to start the server, or 'ewallet seed' to provision the
default roles, accounts and admin users.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
