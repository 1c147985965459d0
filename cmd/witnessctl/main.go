// Command witnessctl is the solver's CLI driver: load a puzzle, run the
// enumerator, and print or render what it found.
//
// Subcommands are wired with github.com/spf13/cobra the way a generate/
// validate/render toolset typically does: one rootCmd with persistent
// flags, one file per subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "witnessctl",
	Short: "Solve and render Witness-style grid path puzzles",
	Long: `witnessctl loads a puzzle (JSON, interleaved-grid schema),
enumerates solutions with the BFS solver, and prints or renders the result.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "disable the progress spinner while solving")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
