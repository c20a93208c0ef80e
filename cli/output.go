package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/capnames/internal/namelist"
	"github.com/mattn/go-isatty"
)

// PrintError writes err to w, styled when w is a terminal.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	message := "capnames: " + err.Error()
	hint := errorHint(err)
	if !isTerminal(w) {
		fmt.Fprintln(w, message)
		if hint != "" {
			fmt.Fprintln(w, hint)
		}
		return
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)
	fmt.Fprintln(w, style.Render(message))
	if hint != "" {
		hintStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
		fmt.Fprintln(w, hintStyle.Render(hint))
	}
}

func errorHint(err error) string {
	var inputErr *namelist.InputAccessError
	var outputErr *namelist.OutputAccessError
	switch {
	case errors.As(err, &inputErr) && errors.Is(err, os.ErrNotExist):
		return "check that the input list exists or pass its path as the first argument"
	case errors.As(err, &outputErr) && errors.Is(err, os.ErrNotExist):
		return "the output directory must exist before capnames can write to it"
	case errors.Is(err, os.ErrPermission):
		return "check the file permissions"
	case errors.Is(err, namelist.ErrNoJobs):
		return `add input/output pairs under "lists" in the config file`
	default:
		return ""
	}
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
