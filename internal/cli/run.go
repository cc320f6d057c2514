package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/taskreport/internal/config"
	taskerrors "github.com/AndreyAkinshin/taskreport/internal/errors"
	"github.com/AndreyAkinshin/taskreport/internal/log"
	"github.com/AndreyAkinshin/taskreport/internal/reporter"
	"github.com/AndreyAkinshin/taskreport/internal/runner"
	"github.com/AndreyAkinshin/taskreport/internal/task"
)

type runFlags struct {
	envFile  string
	file     string
	reporter string
	showOut  bool
	showErr  bool
	cont     bool
	logLevel string
}

func (a *app) runCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [task...]",
		Short: "Run tasks and report results",
		Long: `Run the given tasks, or all tasks, and their dependencies.

Settings are read from TASKREPORT_* environment variables and an optional
.env file; flags take precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runTasks(ctx, cfg, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.envFile, "env-file", ".env", "optional .env file")
	f.StringVarP(&flags.file, "file", "f", config.DefaultFile, "task file")
	f.StringVarP(&flags.reporter, "reporter", "r", reporter.DefaultName, "reporter name (see 'taskreport reporters')")
	f.BoolVar(&flags.showOut, "show-out", true, "include captured stdout of failed tasks")
	f.BoolVar(&flags.showErr, "show-err", true, "include captured stderr of failed tasks")
	f.BoolVar(&flags.cont, "continue", false, "keep running independent tasks after a failure")
	f.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "diagnostic log level")
	return cmd
}

// resolveConfig loads the environment configuration and applies flags the
// user set explicitly.
func (a *app) resolveConfig(cmd *cobra.Command, flags runFlags) (config.Config, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return cfg, taskerrors.Config(err.Error())
	}

	changed := cmd.Flags().Changed
	if changed("file") {
		cfg.File = flags.file
	}
	if changed("reporter") {
		cfg.Reporter = flags.reporter
	}
	if changed("show-out") {
		cfg.ShowOut = flags.showOut
	}
	if changed("show-err") {
		cfg.ShowErr = flags.showErr
	}
	if changed("continue") {
		cfg.Continue = flags.cont
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, taskerrors.Config(err.Error())
	}
	return cfg, nil
}

func (a *app) runTasks(ctx context.Context, cfg config.Config, selected []string) error {
	logger := log.New(a.stderr, log.Format(cfg.LogFormat), cfg.LogLevel)

	set, err := loadTasks(cfg.File)
	if err != nil {
		return err
	}
	tasks, err := set.Order(selected)
	if err != nil {
		return taskerrors.Config(err.Error())
	}
	if set.Len() == 0 {
		a.out.WarningSimple("no tasks in %s", cfg.File)
	}

	factory, ok := reporter.Lookup(cfg.Reporter)
	if !ok {
		return taskerrors.Configf("unknown reporter %q", cfg.Reporter)
	}
	rep := factory(reporter.Streams{Out: a.stdout, Err: a.stderr}, cfg.ReporterOptions())

	logger.Debug("starting run", "file", cfg.File, "reporter", cfg.Reporter, "tasks", len(tasks))
	r := runner.New(rep, runner.Options{
		Dir:      filepath.Dir(cfg.File),
		Continue: cfg.Continue,
		Logger:   logger,
	})
	summary, err := r.Run(ctx, tasks)
	if err != nil {
		return err
	}
	logger.Info("run complete",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"up_to_date", summary.UpToDate,
		"not_run", summary.NotRun)

	if !summary.OK() {
		return taskerrors.TaskFailed("", fmt.Sprintf("%d task(s) failed", summary.Failed))
	}
	return nil
}

// loadTasks loads a task file, classifying any problem as a config error.
func loadTasks(path string) (*task.Set, error) {
	set, err := task.LoadFile(path)
	if err != nil {
		return nil, taskerrors.Config(err.Error())
	}
	return set, nil
}
