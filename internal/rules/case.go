package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wannabewayno/commitional/internal/textcase"
)

// Case requires (always) or forbids (never) one of the listed case styles.
// Fixing rewrites to the first listed style, or under "never" to the first style
// that is not listed. Empty values always pass.
type Case struct {
	base
	styles []textcase.Style
}

func NewCase(s Settings, styles []textcase.Style) (*Case, error) {
	if len(styles) == 0 {
		return nil, fmt.Errorf("%w: case rule needs at least one style", ErrInvalidValue)
	}
	return &Case{base: base{kind: KindCase, settings: s}, styles: slices.Clone(styles)}, nil
}

func (r *Case) Describe() string {
	names := make([]string, len(r.styles))
	for i, s := range r.styles {
		names[i] = string(s)
	}
	return r.describe("be " + strings.Join(names, " or "))
}

func (r *Case) holds(s string) bool {
	if s == "" {
		return r.always()
	}
	for _, style := range r.styles {
		if textcase.Is(s, style) {
			return true
		}
	}
	return false
}

func (r *Case) target() (textcase.Style, bool) {
	if r.always() {
		return r.styles[0], true
	}
	for _, style := range textcase.All {
		if !slices.Contains(r.styles, style) {
			return style, true
		}
	}
	return "", false
}

func (r *Case) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *Case) Fix(parts []string) (Violations, []string) {
	style, ok := r.target()
	if !ok {
		return r.Validate(parts), parts
	}
	return r.fixEach(parts, r.holds, func(s string) string {
		return textcase.Convert(s, style)
	}, r.Describe())
}
