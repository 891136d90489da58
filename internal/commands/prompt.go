package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/cleared-dev/barberbook/internal/artifact"
)

const newArtifactLabel = "Criar nova planilha"

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// formChooser offers the artifacts in a huh select form.
type formChooser struct{}

func (formChooser) Choose(recent []string, newPath string) (string, error) {
	opts := make([]huh.Option[string], 0, len(recent)+1)
	for _, p := range recent {
		opts = append(opts, huh.NewOption(filepath.Base(p), p))
	}
	opts = append(opts, huh.NewOption(newArtifactLabel, newPath))

	choice := newPath
	err := huh.NewSelect[string]().
		Title("Escolha a planilha do dia").
		Options(opts...).
		Value(&choice).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", artifact.ErrNoChoice
	}
	if err != nil {
		return "", err
	}
	return choice, nil
}

// lineChooser prints a numbered menu and reads the choice from a line of input.
// Option 0 creates a new artifact; an empty line picks the most recent one.
type lineChooser struct {
	in  *bufio.Reader
	out io.Writer
}

func (c lineChooser) Choose(recent []string, newPath string) (string, error) {
	for i, p := range recent {
		fmt.Fprintf(c.out, "%d - %s\n", i+1, filepath.Base(p))
	}
	fmt.Fprintf(c.out, "0 - %s\n", newArtifactLabel)
	fmt.Fprint(c.out, "Escolha uma opção: ")

	line, err := c.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", artifact.ErrNoChoice
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("reading choice: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return recent[0], nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 || n > len(recent) {
		return "", fmt.Errorf("invalid option %q", line)
	}
	if n == 0 {
		return newPath, nil
	}
	return recent[n-1], nil
}

// confirm asks a yes/no question. Aborting counts as no.
func confirm(title string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Sim").
		Negative("Não").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// chooserFor picks the interactive form on a terminal and the numbered menu
// otherwise.
func chooserFor(in io.Reader, br *bufio.Reader, out io.Writer) artifact.Chooser {
	if isTerminal(in) {
		return formChooser{}
	}
	return lineChooser{in: br, out: out}
}
