package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/ledger"
	"github.com/cleared-dev/barberbook/internal/session"
)

func addSelectionFlags(cmd *cobra.Command, sel *selection) {
	cmd.Flags().StringVarP(&sel.file, "file", "f", "", "artifact to use instead of choosing")
	cmd.Flags().BoolVar(&sel.latest, "latest", false, "use the most recent artifact")
	cmd.Flags().BoolVar(&sel.fresh, "new", false, "start today's artifact")
	cmd.MarkFlagsMutuallyExclusive("file", "latest", "new")
}

// withSession loads the environment, selects an artifact and opens it.
func withSession(cmd *cobra.Command, flags *globalFlags, sel selection, fn func(*env, *session.Session) error) error {
	e, err := loadEnv(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	in := cmd.InOrStdin()
	path, err := sel.path(e, chooserFor(in, bufio.NewReader(in), cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	s, err := e.openSession(path)
	if err != nil {
		return err
	}
	if s.Degraded {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Planilha com formato inválido, iniciando vazia."))
	}
	return fn(e, s)
}

func newAddCommand(flags *globalFlags) *cobra.Command {
	var sel selection
	var client string
	var age int

	cmd := &cobra.Command{
		Use:   "add <service>",
		Short: "Register a service for a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, sel, func(e *env, s *session.Session) error {
				if client == "" {
					client = e.cfg.Ledger.PlaceholderClient
				}
				return runAdd(cmd.OutOrStdout(), s, client, age, args[0])
			})
		},
	}

	addSelectionFlags(cmd, &sel)
	cmd.Flags().StringVar(&client, "client", "", "client name (defaults to the placeholder client)")
	cmd.Flags().IntVar(&age, "age", 0, "client age")

	return cmd
}

func runAdd(out io.Writer, s *session.Session, client string, age int, service string) error {
	res, err := s.Add(client, age, service)
	reportUpsert(out, service, res)
	return err
}

func reportUpsert(out io.Writer, service string, res ledger.UpsertOutcome) {
	r := res.Record
	switch res.Status {
	case ledger.Created:
		fmt.Fprintf(out, "Serviço registrado: %s para %s (%s)\n", r.Service, r.Client, money(r.UnitPrice))
	case ledger.Updated:
		fmt.Fprintf(out, "Quantidade atualizada: %s para %s agora %d\n", r.Service, r.Client, r.Quantity)
	case ledger.UnknownService:
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("Serviço %q não encontrado.", service)))
		names := make([]string, len(res.Available))
		for i, it := range res.Available {
			names[i] = it.Name
		}
		fmt.Fprintf(out, "Disponíveis: %s\n", strings.Join(names, ", "))
	}
}

func newRemoveCommand(flags *globalFlags) *cobra.Command {
	var sel selection
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the last registered service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, flags, sel, func(_ *env, s *session.Session) error {
				if !yes && isTerminal(cmd.InOrStdin()) {
					ok, err := confirm("Remover o último serviço registrado?")
					if err != nil || !ok {
						return err
					}
				}
				return runRemove(cmd.OutOrStdout(), s)
			})
		},
	}
	addSelectionFlags(cmd, &sel)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runRemove(out io.Writer, s *session.Session) error {
	res, err := s.RemoveLast()
	switch res.Status {
	case ledger.Removed:
		fmt.Fprintf(out, "Removido: %s de %s\n", res.Record.Service, res.Record.Client)
	case ledger.EmptyLedger:
		fmt.Fprintln(out, mutedStyle.Render("Nenhum serviço para remover."))
	}
	return err
}

func newListCommand(flags *globalFlags) *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List services grouped by client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, flags, sel, func(_ *env, s *session.Session) error {
				renderListing(cmd.OutOrStdout(), s.List())
				return nil
			})
		},
	}
	addSelectionFlags(cmd, &sel)

	return cmd
}

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the day's totals and top clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, flags, sel, func(_ *env, s *session.Session) error {
				renderSummary(cmd.OutOrStdout(), s.Summary())
				return nil
			})
		},
	}
	addSelectionFlags(cmd, &sel)

	return cmd
}
