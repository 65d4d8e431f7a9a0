package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridplan",
	Short: "gridplan - repair planning for damaged distribution networks",
	Long: `gridplan turns a damaged electrical network export into an ordered,
phased repair plan: hospitals first, then schools, then everything else,
with shared infrastructure segments counted only once.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "Path to the plan run database")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tuiCmd)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gridplan.db"
	}
	return filepath.Join(home, ".gridplan", "gridplan.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
