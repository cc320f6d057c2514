package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

func (a *app) reportersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reporters",
		Short: "List available reporters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printReporters()
			return nil
		},
	}
}

func (a *app) printReporters() {
	titleCase := cases.Title(language.English)

	var rows [][]string
	for _, name := range reporter.Names() {
		rows = append(rows, []string{name, titleCase.String(name), reporter.Describe(name)})
	}
	a.out.Table([]string{"NAME", "LABEL", "DESCRIPTION"}, rows)
	a.out.Hint("")
	a.out.Hint("Select one with 'taskreport run --reporter <name>' or TASKREPORT_REPORTER.")
}
