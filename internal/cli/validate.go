package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	taskerrors "github.com/AndreyAkinshin/taskreport/internal/errors"
	"github.com/AndreyAkinshin/taskreport/internal/schema"
)

func (a *app) validateCmd() *cobra.Command {
	var tasksFile bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a json report (or a task file with --tasks)",
		Long: `Validate a document against its schema. Without a file argument the
document is read from standard input, so the json reporter's output can be
piped straight in:

  taskreport run -r json | taskreport validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "<stdin>"
			var data []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				data, err = os.ReadFile(name)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return taskerrors.Configf("read %s: %v", name, err)
			}

			validate := schema.ValidateReport
			if tasksFile {
				validate = schema.ValidateTasks
			}
			if err := validate(data); err != nil {
				return taskerrors.Configf("%s: %v", name, err)
			}
			a.out.Success("%s is valid", name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&tasksFile, "tasks", false, "validate a YAML task file instead of a report")
	return cmd
}
