package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/buildinfo"
	"github.com/cleared-dev/barberbook/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "barberbook",
		Short:   "Daily service ledger for a barbershop",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.FileName, "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "also log to stderr")

	rootCmd.AddCommand(
		newInitCommand(),
		newShellCommand(flags),
		newAddCommand(flags),
		newRemoveCommand(flags),
		newListCommand(flags),
		newSummaryCommand(flags),
		newCatalogCommand(flags),
		newArtifactsCommand(flags),
		newGenerateCommand(flags),
	)

	return rootCmd
}
