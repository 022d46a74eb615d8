// Package main is the entry point for the hero planner bot and admin server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hero-planner/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "hero-planner",
	Short: "Hela's Hero Planner bot",
	Long:  `Hero planner tracks hero levels, relics and goals and works out the relics still needed.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
