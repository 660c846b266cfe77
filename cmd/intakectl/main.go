package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	destinationFlag string
	subfolderFlag   string
	verboseFlag     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intakectl",
		Short: "Upload files through the intake pipeline",
		Long: `intakectl runs the same validation, destination resolution and storage
write as the intake server, configured from the same environment.

Examples:
  intakectl upload ./report.pdf
  intakectl upload ./data.csv --destination main.default.uploads --subfolder q3
  intakectl list --destination main.default.uploads
  intakectl resolve "Quarterly Report.pdf"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&destinationFlag, "destination", "", "Override the destination volume (catalog.schema.volume)")
	rootCmd.PersistentFlags().StringVar(&subfolderFlag, "subfolder", "", "Override the subfolder")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log pipeline activity to stderr")

	rootCmd.AddCommand(
		uploadCmd(),
		listCmd(),
		resolveCmd(),
	)

	return rootCmd
}
