package rules

import (
	"fmt"
	"slices"
	"strings"
)

// Enum requires (always) or forbids (never) membership in a fixed set. Empty values pass
// so that presence stays the concern of the Empty rule. It cannot be fixed.
type Enum struct {
	base
	values []string
}

func NewEnum(s Settings, values []string) (*Enum, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: enum rule needs at least one value", ErrInvalidValue)
	}
	return &Enum{base: base{kind: KindEnum, settings: s}, values: slices.Clone(values)}, nil
}

// Values returns the configured members.
func (r *Enum) Values() []string { return slices.Clone(r.values) }

func (r *Enum) Describe() string {
	return r.describe("be one of: " + strings.Join(r.values, ", "))
}

func (r *Enum) Validate(parts []string) Violations {
	return r.validateEach(parts, func(s string) bool {
		if s == "" {
			return r.always()
		}
		return r.contains(r.values, s)
	}, r.Describe())
}

func (r *Enum) Fix(parts []string) (Violations, []string) {
	return r.Validate(parts), parts
}

// AllowMultiple governs multi-valued parts. Under "never" at most one element is allowed and
// fixing keeps only the first; "always" places no constraint.
type AllowMultiple struct{ base }

func NewAllowMultiple(s Settings) *AllowMultiple {
	return &AllowMultiple{base{kind: KindAllowMultiple, settings: s}}
}

func (r *AllowMultiple) Describe() string { return r.describe("allow multiple values") }

func (r *AllowMultiple) Validate(parts []string) Violations {
	if r.always() || len(parts) <= 1 {
		return nil
	}
	var v Violations
	for i := 1; i < len(parts); i++ {
		v = v.add(i, r.Describe())
	}
	return v
}

func (r *AllowMultiple) Fix(parts []string) (Violations, []string) {
	if r.Validate(parts) == nil {
		return nil, parts
	}
	return nil, []string{parts[0]}
}

// Exists requires every listed value to be present (always) or absent (never).
type Exists struct {
	base
	values []string
}

func NewExists(s Settings, values []string) (*Exists, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: exists rule needs at least one value", ErrInvalidValue)
	}
	return &Exists{base: base{kind: KindExists, settings: s}, values: slices.Clone(values)}, nil
}

func (r *Exists) Describe() string {
	return r.describe("include " + strings.Join(r.values, ", "))
}

func (r *Exists) missing(parts []string) []string {
	var out []string
	for _, v := range r.values {
		if !r.contains(parts, v) {
			out = append(out, v)
		}
	}
	return out
}

// Validate reports missing values at index 0 and forbidden ones at their own index.
func (r *Exists) Validate(parts []string) Violations {
	if r.always() {
		if missing := r.missing(parts); len(missing) > 0 {
			return Violations{0: fmt.Sprintf("%s (missing %s)", r.Describe(), strings.Join(missing, ", "))}
		}
		return nil
	}

	var v Violations
	for i, p := range parts {
		if r.contains(r.values, p) {
			v = v.add(i, r.Describe())
		}
	}
	return v
}

func (r *Exists) Fix(parts []string) (Violations, []string) {
	if r.always() {
		missing := r.missing(parts)
		if len(missing) == 0 {
			return nil, parts
		}
		return nil, append(slices.Clone(parts), missing...)
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !r.contains(r.values, p) {
			out = append(out, p)
		}
	}
	return nil, out
}

// contains matches exactly, except that trailer tokens match whatever case style they
// are written in ("signed-off-by" is "Signed-off-by").
func (b base) contains(list []string, s string) bool {
	if b.settings.Part != PartTrailer {
		return slices.Contains(list, s)
	}
	s = NormalizeTrailer(s)
	return slices.ContainsFunc(list, func(v string) bool { return NormalizeTrailer(v) == s })
}
