// Command adt drives the library's two demonstration surfaces:
//
//	adt demo   print successive container states and a DFS traversal
//	adt bench  time both selection strategies across sizes and distributions
//
// Both are demonstration drivers, not stable APIs; their exact output text
// is illustrative.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// log is the process-wide console logger; library packages never log, so
// this stays confined to the drivers.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "adt",
	Short: "classic data structures and selection algorithms, demonstrated",
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
