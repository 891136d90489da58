package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string
	var format string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new barberbook directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name, format)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "barbershop name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&format, "format", config.FormatXLSX, "artifact format (csv or xlsx)")

	return cmd
}

func runInit(out io.Writer, dir, name, format string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)
	cfg.Storage.Format = format
	if err := cfg.Validate(); err != nil {
		return err
	}

	storageDir := resolve(dir, cfg.Storage.Dir)
	for _, d := range []string{storageDir, filepath.Join(storageDir, "logs")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := catalog.New(catalog.Default()).Save(storageDir); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	fmt.Fprintf(out, "Initialized barberbook for %s at %s\n", name, dir)
	return nil
}
