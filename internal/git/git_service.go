package git

import (
	"bytes"
	"context"
	stdErrors "errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
)

// GitService runs the git binary inside dir. An empty dir means the
// working directory of the process.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// run executes git and returns stdout. On failure the returned stderr holds
// git's explanation.
func (s *GitService) run(ctx context.Context, args ...string) (stdout []byte, stderr string, err error) {
	cmd := s.command(ctx, args...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	logger.Debug(ctx, "running git", "args", strings.Join(args, " "))
	out, err := cmd.Output()
	return out, strings.TrimSpace(errBuf.String()), err
}

// IsRepository reports whether dir is inside a git work tree. A missing git
// binary is an error, any other failure of git means "no".
func (s *GitService) IsRepository(ctx context.Context) (bool, error) {
	out, _, err := s.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		var exitErr *exec.ExitError
		if stdErrors.As(err, &exitErr) {
			return false, nil
		}
		return false, errors.ErrNotInGitRepo.WithError(err)
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// GetRepoRoot returns the absolute path of the top of the work tree.
func (s *GitService) GetRepoRoot(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err).WithContext("stderr", stderr)
	}
	return strings.TrimSpace(string(out)), nil
}

// HooksDir returns the directory git runs hooks from, honoring
// core.hooksPath. Relative results are resolved against dir.
func (s *GitService) HooksDir(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", errors.ErrNotInGitRepo.WithError(err).WithContext("stderr", stderr)
	}

	hooks := strings.TrimSpace(string(out))
	if !filepath.IsAbs(hooks) {
		hooks = filepath.Join(s.dir, hooks)
	}
	return hooks, nil
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err).WithContext("stderr", stderr)
	}

	branchName := strings.TrimSpace(string(out))
	if branchName == "" {
		return "", errors.ErrNoBranch
	}

	return branchName, nil
}

// GetFileStatuses lists the changed paths with their index state.
func (s *GitService) GetFileStatuses(ctx context.Context) ([]models.FileStatus, error) {
	out, stderr, err := s.run(ctx, "status", "--porcelain=v1", "-z", "--untracked-files=all")
	if err != nil {
		return nil, errors.ErrGetStatus.WithError(err).WithContext("stderr", stderr)
	}
	return parsePorcelain(out), nil
}

// parsePorcelain reads NUL separated `git status --porcelain -z` output.
// Rename and copy entries are followed by their source path, which is
// skipped.
func parsePorcelain(out []byte) []models.FileStatus {
	statuses := make([]models.FileStatus, 0)
	entries := strings.Split(string(out), "\x00")

	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}

		x, y := entry[0], entry[1]
		statuses = append(statuses, models.FileStatus{
			Path:     entry[3:],
			Index:    models.ParseIndexState(x),
			WorkTree: y,
		})

		if x == 'R' || x == 'C' {
			i++
		}
	}

	return statuses
}

// CreateCommit commits the staged changes with message as is.
func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	_, stderr, err := s.run(ctx, "commit", "--cleanup=verbatim", "-m", message)
	if err != nil {
		return errors.ErrCreateCommit.WithError(fmt.Errorf("git commit: %w", err)).WithContext("stderr", stderr)
	}
	return nil
}
