// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	apiToken     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "App Context Service",
	Long:  `App Context Service CLI for managing tenants and users.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8000", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&apiToken, "api-token", "", "Bearer token for the admin API, see the token command")
}
