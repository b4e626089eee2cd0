// Package namespace maps changed file paths onto monorepo namespaces declared as directory patterns.
//
// A pattern ending in "/*" is a wildcard: every immediate subdirectory of the prefix is a namespace.
// Any other pattern is literal: the directory itself is the namespace, named after its last element.
// Patterns are matched in declaration order and the first match wins.
package namespace

import (
	"path"
	"sort"
	"strings"
)

const wildcardSuffix = "/*"

type pattern struct {
	dir      string
	wildcard bool
}

// Resolver resolves file paths to namespaces. It holds no state beyond its patterns.
type Resolver struct {
	patterns []pattern
}

// Match is a namespace together with the directory that owns it.
type Match struct {
	Namespace string
	Dir       string
}

// NewResolver builds a resolver from directory patterns such as "apps/*" or "tools/cli".
func NewResolver(patterns []string) *Resolver {
	r := &Resolver{patterns: make([]pattern, 0, len(patterns))}
	for _, p := range patterns {
		p = normalize(p)
		if p == "" || p == "*" {
			continue
		}
		if strings.HasSuffix(p, wildcardSuffix) {
			r.patterns = append(r.patterns, pattern{dir: strings.TrimSuffix(p, wildcardSuffix), wildcard: true})
			continue
		}
		r.patterns = append(r.patterns, pattern{dir: p})
	}
	return r
}

// FileNamespace returns the namespace owning a file. Files at the repository root never have one.
func (r *Resolver) FileNamespace(file string) (Match, bool) {
	file = normalize(file)
	if !strings.Contains(file, "/") {
		return Match{}, false
	}

	for _, p := range r.patterns {
		prefix := p.dir + "/"
		if !strings.HasPrefix(file, prefix) {
			continue
		}
		if !p.wildcard {
			return Match{Namespace: path.Base(p.dir), Dir: p.dir}, true
		}

		rest := file[len(prefix):]
		idx := strings.Index(rest, "/")
		if idx <= 0 {
			// a file directly inside the wildcard prefix is not inside any namespace
			continue
		}
		ns := rest[:idx]
		return Match{Namespace: ns, Dir: prefix + ns}, true
	}

	return Match{}, false
}

// Namespaces returns the distinct namespaces touched by files, sorted by name.
func (r *Resolver) Namespaces(files []string) []Match {
	seen := make(map[string]Match)
	for _, f := range files {
		if m, ok := r.FileNamespace(f); ok {
			if _, dup := seen[m.Namespace]; !dup {
				seen[m.Namespace] = m
			}
		}
	}

	out := make([]Match, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Namespace < out[j].Namespace })
	return out
}

// ValidateSingleNamespace fails when files resolve to more than one namespace.
func (r *Resolver) ValidateSingleNamespace(files []string) error {
	matches := r.Namespaces(files)
	if len(matches) > 1 {
		return &AlignmentError{Reason: MultipleNamespaces, Namespaces: names(matches)}
	}
	return nil
}

// ValidateNamespaceAlignment checks that declared is the single namespace required by files.
// An empty declared value means no namespace was given.
func (r *Resolver) ValidateNamespaceAlignment(declared string, files []string) error {
	declared = strings.TrimSpace(declared)

	matches := r.Namespaces(files)
	switch {
	case len(matches) > 1:
		return &AlignmentError{Reason: MultipleNamespaces, Declared: declared, Namespaces: names(matches)}
	case len(matches) == 0:
		if declared != "" {
			return &AlignmentError{Reason: NeedlessNamespace, Declared: declared}
		}
		return nil
	}

	m := matches[0]
	if declared == "" {
		return &AlignmentError{Reason: MissingNamespace, Dir: m.Dir, Required: m.Namespace}
	}
	if declared != m.Namespace {
		return &AlignmentError{Reason: WrongNamespace, Dir: m.Dir, Required: m.Namespace, Declared: declared}
	}
	return nil
}

func names(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Namespace
	}
	return out
}

func normalize(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	p = strings.TrimPrefix(p, "/")
	if strings.HasSuffix(p, wildcardSuffix) {
		return path.Clean(strings.TrimSuffix(p, wildcardSuffix)) + wildcardSuffix
	}
	if p == "" {
		return ""
	}
	return path.Clean(p)
}
