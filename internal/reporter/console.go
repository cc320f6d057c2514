package reporter

import (
	"strings"
	"sync"

	"github.com/AndreyAkinshin/taskreport/internal/output"
)

// digestSeparator precedes each entry of the failure digest.
var digestSeparator = strings.Repeat("#", 40)

// failureEntry pairs a failed task with the reason it failed.
type failureEntry struct {
	task    Task
	failure Failure
}

// Console prints task titles as they run and a digest of all failures
// once the run completes.
type Console struct {
	w    *output.Writer
	opts Options

	mu       sync.Mutex
	failures []failureEntry
}

// NewConsole creates the default console reporter.
func NewConsole(streams Streams, opts Options) *Console {
	return &Console{
		w:    output.NewWithWriters(streams.Out, streams.Err, false),
		opts: opts,
	}
}

// NewExecutedOnly creates a console reporter that produces output only for
// tasks that actually execute actions.
func NewExecutedOnly(streams Streams, opts Options) *Console {
	opts.ExecutedOnly = true
	return NewConsole(streams, opts)
}

// StartTask is a no-op.
func (c *Console) StartTask(Task) error { return nil }

// ExecuteTask prints the task title.
func (c *Console) ExecuteTask(t Task) error {
	if c.opts.ExecutedOnly && len(t.Actions()) == 0 {
		return nil
	}
	return c.w.Println("%s", t.Title())
}

// AddFailure records the failure for the completion digest.
func (c *Console) AddFailure(t Task, f Failure) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, failureEntry{task: t, failure: f})
	return nil
}

// AddSuccess is a no-op.
func (c *Console) AddSuccess(Task) error { return nil }

// SkipUptodate prints the title with an up-to-date marker.
func (c *Console) SkipUptodate(t Task) error {
	if c.opts.ExecutedOnly {
		return nil
	}
	return c.w.Println("--- %s", t.Title())
}

// CleanupError prints the failure message to the error stream.
func (c *Console) CleanupError(f Failure) error {
	return c.w.Error("%s", f.Message())
}

// CompleteRun writes the failure digest to the error stream.
func (c *Console) CompleteRun() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.failures {
		if err := c.writeFailure(entry); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) writeFailure(entry failureEntry) error {
	if err := c.w.Errorln("%s", digestSeparator); err != nil {
		return err
	}
	if err := c.w.Errorln("%s: %s", entry.failure.Name(), entry.task.Name()); err != nil {
		return err
	}
	if err := c.w.Errorln("%s", entry.failure.Message()); err != nil {
		return err
	}
	if c.opts.ShowOut {
		if out := capturedOut(entry.task); out != "" {
			if err := c.w.Errorln("%s", out); err != nil {
				return err
			}
		}
	}
	if c.opts.ShowErr {
		if errOut := capturedErr(entry.task); errOut != "" {
			if err := c.w.Errorln("%s", errOut); err != nil {
				return err
			}
		}
	}
	return nil
}
