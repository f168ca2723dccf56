package commands

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/category"
)

var errNoCategory = errors.New(`required flag "category" not set`)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// pickCategory returns given when set. Otherwise it asks the user to choose
// a category, which needs a terminal on stdin.
func pickCategory(cmd *cobra.Command, ws *workspace, given string) (string, error) {
	if given != "" {
		return given, nil
	}
	if !interactive(cmd.InOrStdin()) {
		return "", errNoCategory
	}
	cats := ws.Board.All()
	if len(cats) == 0 {
		return "", errors.New("no categories yet, add one with: keepcmd add category <title>")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .Description | cyan }}",
		Inactive: "   {{ .Title }} {{ .Description | faint }}",
		Selected: "{{ .Title | bold }}",
		Details: `
--------- {{ .Title }} ----------
{{ range .Commands }}$ {{ .Command }}
{{ end }}`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Category",
		Items:     cats,
		Templates: templates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			return len(category.Filter(cats[index:index+1], input)) == 1
		},
		Stdin:  io.NopCloser(cmd.InOrStdin()),
		Stdout: nopWriteCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return cats[i].ID, nil
}
