package pkgmgr

import (
	"context"
	"slices"
	"strings"
)

// Git enumerates the files of the repository in the current directory.
type Git struct {
	runner Runner
}

// NewGit creates a Git client using the given runner, or the default runner
// if nil.
func NewGit(runner Runner) *Git {
	if runner == nil {
		runner = NewRunner()
	}
	return &Git{runner: runner}
}

// ListFiles returns the tracked and untracked-but-not-ignored files of the
// repository, sorted for determinism.
func (g *Git) ListFiles(ctx context.Context) ([]string, error) {
	out, err := g.runner.Run(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	slices.Sort(files)
	return files, nil
}

// UserName returns the configured git user name, or def when unset.
func (g *Git) UserName(ctx context.Context, def string) string {
	out, err := g.runner.Run(ctx, "git", "config", "user.name")
	if err != nil {
		return def
	}
	if name := strings.TrimSpace(string(out)); name != "" {
		return name
	}
	return def
}
