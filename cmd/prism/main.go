package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prism/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Prism shading language front end",
	Long:  `Prism assembles typed shader IR from embedded DSL recipes`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
