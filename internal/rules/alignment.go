package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wannabewayno/commitional/internal/namespace"
)

var ErrNoGitContext = errors.New("namespace alignment needs a git context provider")

// GitContext describes the files a commit touches.
type GitContext struct {
	Files    []string
	IsStaged bool
}

// GitContextProvider supplies the changed files of the commit being checked.
type GitContextProvider interface {
	GitContext() (GitContext, error)
}

// GitContextFunc adapts a function to GitContextProvider.
type GitContextFunc func() (GitContext, error)

func (f GitContextFunc) GitContext() (GitContext, error) { return f() }

// NamespaceAlignment requires the declared namespace to be the single namespace the changed
// files resolve to. It cannot be fixed.
type NamespaceAlignment struct {
	base
	dirs []string
	git  GitContextProvider
}

func NewNamespaceAlignment(s Settings, dirs []string, git GitContextProvider) (*NamespaceAlignment, error) {
	if git == nil {
		return nil, ErrNoGitContext
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: namespace-alignment needs at least one directory pattern", ErrInvalidValue)
	}
	return &NamespaceAlignment{
		base: base{kind: KindNamespaceAlignment, settings: s},
		dirs: slices.Clone(dirs),
		git:  git,
	}, nil
}

func (r *NamespaceAlignment) Describe() string {
	return r.describe("match the namespace of the changed files")
}

func (r *NamespaceAlignment) Validate(parts []string) Violations {
	gc, err := r.git.GitContext()
	if err != nil {
		return Violations{0: fmt.Sprintf("unable to determine changed files: %v", err)}
	}

	declared := ""
	if len(parts) > 0 {
		declared = parts[0]
	}

	alignErr := namespace.NewResolver(r.dirs).ValidateNamespaceAlignment(declared, gc.Files)
	switch {
	case r.always() && alignErr != nil:
		return Violations{0: alignErr.Error()}
	case !r.always() && alignErr == nil:
		return Violations{0: r.Describe()}
	}
	return nil
}

func (r *NamespaceAlignment) Fix(parts []string) (Violations, []string) {
	return r.Validate(parts), parts
}
