package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/fixture"
)

func newGenerateCommand(flags *globalFlags) *cobra.Command {
	var rows int
	var seed uint64
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a sample artifact with random clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			path := out
			if path == "" {
				path = e.selector.NewPath()
			}

			gen := &fixture.Generator{Items: e.catalog.All()}
			if cmd.Flags().Changed("seed") {
				gen.Rand = rand.New(rand.NewPCG(seed, seed))
			}
			records := gen.Generate(rows)

			if err := e.store.Save(path, records); err != nil {
				return err
			}
			e.log.Info().Str("artifact", path).Int("records", len(records)).Msg("generated sample artifact")
			fmt.Fprintf(cmd.OutOrStdout(), "%d registros gravados em %s\n", len(records), path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 50, "number of clients to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (defaults to today's artifact)")

	return cmd
}
