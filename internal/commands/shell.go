package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/barberbook/internal/session"
)

const shellHelp = `Comandos:
  add <serviço> [idade] [cliente]  registra um serviço
  remover                          remove o último serviço
  listar                           lista os serviços por cliente
  resumo                           mostra o resumo do dia
  catalogo                         mostra os serviços e preços
  ajuda                            mostra esta ajuda
  sair                             salva e encerra`

func newShellCommand(flags *globalFlags) *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over one artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, flags, sel)
		},
	}
	addSelectionFlags(cmd, &sel)

	return cmd
}

func runShell(cmd *cobra.Command, flags *globalFlags, sel selection) error {
	e, err := loadEnv(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	br := bufio.NewReader(in)

	path, err := sel.path(e, chooserFor(in, br, out))
	if err != nil {
		return err
	}
	s, err := e.openSession(path)
	if err != nil {
		return err
	}

	title := "barberbook"
	if e.cfg.Business.Name != "" {
		title = e.cfg.Business.Name
	}
	fmt.Fprintf(out, "%s: %s\n", headerStyle.Render(title), s.Path)
	if s.Degraded {
		fmt.Fprintln(out, warnStyle.Render("Planilha com formato inválido, iniciando vazia."))
	}
	fmt.Fprintln(out, mutedStyle.Render("Digite 'ajuda' para ver os comandos."))

	sh := &shell{session: s, env: e, out: out}
	for {
		fmt.Fprint(out, "> ")
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		if done := sh.exec(strings.TrimSpace(line)); done || eof {
			if eof {
				fmt.Fprintln(out)
			}
			break
		}
	}

	if err := s.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Planilha salva em %s\n", s.Path)
	return nil
}

type shell struct {
	session *session.Session
	env     *env
	out     io.Writer
}

// exec runs one input line and reports whether the shell should stop.
func (sh *shell) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch strings.ToLower(fields[0]) {
	case "add", "adicionar":
		err = sh.add(fields[1:])
	case "remover", "remove":
		err = runRemove(sh.out, sh.session)
	case "listar", "list":
		renderListing(sh.out, sh.session.List())
	case "resumo", "summary":
		renderSummary(sh.out, sh.session.Summary())
	case "catalogo", "catálogo":
		renderCatalog(sh.out, sh.env.catalog.All())
	case "ajuda", "help":
		fmt.Fprintln(sh.out, shellHelp)
		renderCatalog(sh.out, sh.env.catalog.All())
	case "sair", "exit", "quit":
		return true
	default:
		fmt.Fprintf(sh.out, "Comando desconhecido: %s\n", fields[0])
	}

	if err != nil {
		fmt.Fprintln(sh.out, warnStyle.Render("Erro: "+err.Error()))
	}
	return false
}

// add parses "<service> [age] [client...]".
func (sh *shell) add(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "Uso: add <serviço> [idade] [cliente]")
		return nil
	}
	service, rest := args[0], args[1:]

	age := 0
	if len(rest) > 0 {
		if n, err := strconv.Atoi(rest[0]); err == nil {
			age = n
			rest = rest[1:]
		}
	}

	client := strings.Join(rest, " ")
	if client == "" {
		client = sh.env.cfg.Ledger.PlaceholderClient
	}
	return runAdd(sh.out, sh.session, client, age, service)
}
