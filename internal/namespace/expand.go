package namespace

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand turns directory patterns into the concrete namespace names present in fsys,
// in pattern declaration order. Paths in fsys are relative to the repository root.
func Expand(fsys fs.FS, patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	for _, raw := range patterns {
		p := normalize(raw)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid namespace pattern %q", raw)
		}

		matches, err := doublestar.Glob(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand namespace pattern %q: %w", raw, err)
		}

		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil || !info.IsDir() {
				continue
			}
			name := path.Base(m)
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}

	return out, nil
}
