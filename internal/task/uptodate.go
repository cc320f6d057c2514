package task

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UpToDate reports whether the task's targets are current with respect to
// its file dependencies. Relative paths are resolved against dir.
//
// A task is up to date only when it declares both file dependencies and
// targets, every target exists, and no dependency was modified after the
// oldest target. A missing file dependency is an error.
func (t *Task) UpToDate(dir string) (bool, error) {
	if len(t.fileDep) == 0 || len(t.targets) == 0 {
		return false, nil
	}

	var oldest time.Time
	for _, target := range t.targets {
		info, err := os.Stat(resolve(dir, target))
		if os.IsNotExist(err) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("stat target %q: %w", target, err)
		}
		if oldest.IsZero() || info.ModTime().Before(oldest) {
			oldest = info.ModTime()
		}
	}

	for _, dep := range t.fileDep {
		info, err := os.Stat(resolve(dir, dep))
		if err != nil {
			return false, fmt.Errorf("file dependency %q: %w", dep, err)
		}
		if info.ModTime().After(oldest) {
			return false, nil
		}
	}
	return true, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
