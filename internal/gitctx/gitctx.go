// Package gitctx reports which files the commit being linted touches.
package gitctx

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/wannabewayno/commitional/internal/logging"
	"github.com/wannabewayno/commitional/internal/rules"
)

// Provider reads changed files from a repository: the staged files when there are any,
// otherwise the files of the HEAD commit. The lookup happens once per provider.
type Provider struct {
	repo   *git.Repository
	lookup func() (rules.GitContext, error)
}

// Open finds the repository containing path.
func Open(ctx context.Context, path string) (*Provider, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	return New(ctx, repo), nil
}

// New wraps an open repository.
func New(ctx context.Context, repo *git.Repository) *Provider {
	p := &Provider{repo: repo}
	p.lookup = sync.OnceValues(func() (rules.GitContext, error) {
		return p.read(ctx)
	})
	return p
}

// GitContext implements rules.GitContextProvider.
func (p *Provider) GitContext() (rules.GitContext, error) {
	return p.lookup()
}

// Root returns the worktree's top-level directory.
func (p *Provider) Root() (string, error) {
	wt, err := p.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

func (p *Provider) read(ctx context.Context) (rules.GitContext, error) {
	staged, err := p.StagedFiles()
	if err != nil {
		return rules.GitContext{}, err
	}
	if len(staged) > 0 {
		logging.Get(ctx).Debug().Strs("files", staged).Msg("using staged files")
		return rules.GitContext{Files: staged, IsStaged: true}, nil
	}

	files, err := p.HeadFiles()
	if err != nil {
		return rules.GitContext{}, err
	}
	logging.Get(ctx).Debug().Strs("files", files).Msg("nothing staged, using HEAD commit files")
	return rules.GitContext{Files: files}, nil
}

// StagedFiles lists the files staged in the index, sorted.
func (p *Provider) StagedFiles() ([]string, error) {
	wt, err := p.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	var files []string
	for f, s := range st {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files, nil
}

// HeadFiles lists the files changed by the HEAD commit. A repository without commits
// has none.
func (p *Provider) HeadFiles() ([]string, error) {
	ref, err := p.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	c, err := p.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	stats, err := c.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to diff HEAD commit: %w", err)
	}

	files := make([]string, 0, len(stats))
	for _, s := range stats {
		files = append(files, s.Name)
	}
	sort.Strings(files)
	return files, nil
}
