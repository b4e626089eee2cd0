package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wannabewayno/commitional/internal/namespace"
)

// NamespaceReport lists the namespace each path resolves to.
type NamespaceReport struct {
	Files      []string
	Matches    map[string]namespace.Match
	Namespaces []namespace.Match
	// Err is set when the files span more than one namespace.
	Err error
}

// Namespaces resolves paths against the configured namespace patterns. Without paths the
// commit's changed files are used.
func (a *App) Namespaces(ctx context.Context, paths []string) (NamespaceReport, error) {
	_, cfg, err := a.Load(ctx)
	if err != nil {
		return NamespaceReport{}, err
	}

	files := make([]string, 0, len(paths))
	for _, p := range paths {
		files = append(files, a.relative(p))
	}
	if len(files) == 0 {
		git := a.gitProvider(ctx)
		if git == nil {
			return NamespaceReport{}, fmt.Errorf("no paths given and %s is not a git repository", a.projectRoot)
		}
		gc, err := git.GitContext()
		if err != nil {
			return NamespaceReport{}, fmt.Errorf("failed to read changed files: %w", err)
		}
		files = gc.Files
	}

	resolver := namespace.NewResolver(cfg.Namespaces)
	report := NamespaceReport{
		Files:      files,
		Matches:    make(map[string]namespace.Match, len(files)),
		Namespaces: resolver.Namespaces(files),
		Err:        resolver.ValidateSingleNamespace(files),
	}
	for _, f := range files {
		if m, ok := resolver.FileNamespace(f); ok {
			report.Matches[f] = m
		}
	}
	return report, nil
}

// relative turns a path into a slash-separated path from the project root.
func (a *App) relative(p string) string {
	if filepath.IsAbs(p) {
		if rel, err := filepath.Rel(a.projectRoot, p); err == nil && !strings.HasPrefix(rel, "..") {
			p = rel
		}
	}
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "./")
}
