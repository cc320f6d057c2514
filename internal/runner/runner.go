// Package runner drives a set of tasks through a reporter in dependency order.
package runner

import (
	"context"
	"log/slog"

	taskerrors "github.com/AndreyAkinshin/taskreport/internal/errors"
	"github.com/AndreyAkinshin/taskreport/internal/log"
	"github.com/AndreyAkinshin/taskreport/internal/reporter"
	"github.com/AndreyAkinshin/taskreport/internal/task"
)

// CleanupFunc runs after all tasks. A returned error is reported as a
// cleanup error and does not fail any task.
type CleanupFunc func() error

// Runner executes tasks sequentially and reports every lifecycle event.
// Runner calls CompleteRun exactly once per Run, including runs that stop
// early because a task failed or the context was canceled.
type Runner struct {
	reporter reporter.Reporter
	opts     Options
	cleanups []CleanupFunc
}

// Options configures execution behavior.
type Options struct {
	// Dir is the working directory for actions and file dependencies.
	Dir string

	// Continue keeps running independent tasks after a failure. Tasks that
	// depend on a failed task are reported as failed without running.
	Continue bool

	Logger *slog.Logger
}

// Summary counts task outcomes of a run.
type Summary struct {
	Succeeded int
	Failed    int
	UpToDate  int
	// NotRun counts tasks skipped because the run stopped early.
	NotRun int
}

// OK reports whether no task failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// New creates a Runner reporting to rep.
func New(rep reporter.Reporter, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	return &Runner{reporter: rep, opts: opts}
}

// AddCleanup registers fn to run after the last task.
func (r *Runner) AddCleanup(fn CleanupFunc) {
	r.cleanups = append(r.cleanups, fn)
}

// Run executes tasks in the given order, which must already satisfy
// dependencies. The returned error is non-nil only when reporting failed
// (a *taskerrors.TaskError of kind KindReport) or ctx was canceled; task
// failures are reflected in the Summary.
func (r *Runner) Run(ctx context.Context, tasks []*task.Task) (Summary, error) {
	var summary Summary
	failed := make(map[string]bool)
	logger := r.opts.Logger

	var runErr error
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			runErr = err
			summary.NotRun = len(tasks) - i
			break
		}

		outcome, err := r.runTask(ctx, t, failed)
		if err != nil {
			return summary, taskerrors.Report(err)
		}
		logger.Debug("task finished", "task", t.Name(), "outcome", string(outcome))

		switch outcome {
		case reporter.OutcomeSuccess:
			summary.Succeeded++
		case reporter.OutcomeUpToDate:
			summary.UpToDate++
		case reporter.OutcomeFail:
			summary.Failed++
			failed[t.Name()] = true
		}

		if outcome == reporter.OutcomeFail && !r.opts.Continue {
			summary.NotRun = len(tasks) - i - 1
			logger.Info("stopping after failure", "task", t.Name(), "not_run", summary.NotRun)
			break
		}
	}

	for _, fn := range r.cleanups {
		if err := fn(); err != nil {
			logger.Warn("cleanup failed", "error", err)
			if rerr := r.reporter.CleanupError(taskerrors.Cleanup(err)); rerr != nil {
				return summary, taskerrors.Report(rerr)
			}
		}
	}

	if err := r.reporter.CompleteRun(); err != nil {
		return summary, taskerrors.Report(err)
	}
	return summary, runErr
}

// runTask reports and executes a single task. The returned error is a
// reporter failure only.
func (r *Runner) runTask(ctx context.Context, t *task.Task, failed map[string]bool) (reporter.Outcome, error) {
	rep := r.reporter
	if err := rep.StartTask(t); err != nil {
		return reporter.OutcomeUnset, err
	}

	for _, dep := range t.TaskDep() {
		if failed[dep] {
			return reporter.OutcomeFail, rep.AddFailure(t, taskerrors.DependencyError(t.Name(), dep))
		}
	}

	upToDate, err := t.UpToDate(r.opts.Dir)
	if err != nil {
		return reporter.OutcomeFail, rep.AddFailure(t, taskerrors.Task(t.Name(), err))
	}
	if upToDate {
		return reporter.OutcomeUpToDate, rep.SkipUptodate(t)
	}

	if err := rep.ExecuteTask(t); err != nil {
		return reporter.OutcomeUnset, err
	}
	for _, a := range t.CmdActions() {
		if err := a.Execute(ctx, r.opts.Dir); err != nil {
			return reporter.OutcomeFail, rep.AddFailure(t, taskerrors.CommandError(t.Name(), err))
		}
	}
	return reporter.OutcomeSuccess, rep.AddSuccess(t)
}
