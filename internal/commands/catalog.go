package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/artifact"
	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/model"
)

func newCatalogCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the service price list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			renderCatalog(cmd.OutOrStdout(), e.catalog.All())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <service> <price>",
		Short: "Add a service or change its price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			return runCatalogSet(e, args[0], args[1], cmd.OutOrStdout())
		},
	})

	return cmd
}

func runCatalogSet(e *env, name, priceText string, out io.Writer) error {
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", priceText, err)
	}
	if price.IsNegative() {
		return fmt.Errorf("invalid price %q: negative", priceText)
	}

	items := append(e.catalog.All(), catalog.Item{Name: name, Price: price})
	updated := catalog.New(items)
	if err := updated.Save(e.storageDir); err != nil {
		return err
	}
	e.log.Info().Str("service", name).Str("price", price.StringFixed(2)).Msg("catalog updated")
	fmt.Fprintf(out, "%s: %s\n", name, money(price))
	return nil
}

func newArtifactsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts",
		Short: "List stored artifacts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			paths, err := e.selector.Candidates()
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("Nenhuma planilha encontrada."))
				return nil
			}

			t := newTable("PLANILHA", "DATA")
			for _, p := range paths {
				name := filepath.Base(p)
				date := "?"
				if d, err := artifact.ParseName(name, e.selector.Prefix, e.selector.Ext); err == nil {
					date = d.Format(model.DateFormat)
				}
				t.Row(name, date)
			}
			fmt.Fprintln(out, t.String())
			return nil
		},
	}
}
