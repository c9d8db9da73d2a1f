// Package setup holds the commands that add, change and remove the commit
// template of a project.
package setup

import (
	"context"

	"github.com/thomas-vilte/commit-template/internal/git"
	"github.com/thomas-vilte/commit-template/internal/logger"
)

// project is the directory the template lives in. Outside a repository it
// is the working directory and hooksDir is empty.
type project struct {
	root     string
	hooksDir string
}

func (p project) inRepository() bool {
	return p.hooksDir != ""
}

func locateProject(ctx context.Context, dir string) (project, error) {
	gitService := git.NewGitService(dir)

	isRepo, err := gitService.IsRepository(ctx)
	if err != nil {
		return project{}, err
	}
	if !isRepo {
		logger.Debug(ctx, "not a git repository, using working directory", "dir", dir)
		return project{root: dir}, nil
	}

	root, err := gitService.GetRepoRoot(ctx)
	if err != nil {
		return project{}, err
	}
	hooksDir, err := gitService.HooksDir(ctx)
	if err != nil {
		return project{}, err
	}

	return project{root: root, hooksDir: hooksDir}, nil
}
