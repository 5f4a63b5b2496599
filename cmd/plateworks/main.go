package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plateworks",
	Short: "Welded plate girder design per IS 800:2007",
	Long: `plateworks - welded plate girder capacity checks and optimization

Commands:
  check     evaluate a given cross-section against the full check suite
  optimize  search for the lightest section for a given loading`,
}

func main() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
