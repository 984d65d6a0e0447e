// Package main is the entry point for the cardbrain CLI
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cardbrain",
	Short: "Card game turn advisor",
	Long:  `cardbrain analyzes a card game board state and recommends energy attachments, attacks, trainer plays, and retreats for the acting player.`,
}

func main() {
	// A missing .env is fine; flags and defaults cover everything
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(demoCmd)
}
