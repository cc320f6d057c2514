// Package cli provides the command-line interface for taskreport.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	taskerrors "github.com/AndreyAkinshin/taskreport/internal/errors"
	"github.com/AndreyAkinshin/taskreport/internal/output"
	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

// Version is set at build time.
var Version = "dev"

// app carries the output streams shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	out    *output.Writer
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	streams := reporter.StdStreams()
	return run(args, streams.Out, streams.Err, output.New())
}

func run(args []string, stdout, stderr io.Writer, w *output.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, out: w}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return taskerrors.ExitSuccess
	}

	code := taskerrors.GetExitCode(err)
	// Failed tasks were already reported by the reporter.
	if !isTaskFailure(err) {
		a.out.ErrorPrefix("%v", err)
	}
	return code
}

func (a *app) rootCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "taskreport",
		Short: "Run tasks and report their results",
		Long: `taskreport runs the tasks of a YAML task file in dependency order and
reports each task's lifecycle through a selectable reporter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.out.SetQuiet(quiet)
		},
	}
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress hints and success messages")

	cmd.AddCommand(a.runCmd())
	cmd.AddCommand(a.reportersCmd())
	cmd.AddCommand(a.validateCmd())
	cmd.AddCommand(a.versionCmd())
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(a.stdout, "taskreport "+Version+"\n")
			return err
		},
	}
}

func isTaskFailure(err error) bool {
	te, ok := err.(*taskerrors.TaskError)
	return ok && te.Kind == taskerrors.KindTaskFailed
}
