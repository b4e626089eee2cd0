package rules

import (
	"fmt"
	"strings"
)

// Empty requires the part to be blank (always) or to have content (never).
// Only the "always" direction can be fixed, by clearing the value.
type Empty struct{ base }

func NewEmpty(s Settings) *Empty {
	return &Empty{base{kind: KindEmpty, settings: s}}
}

func (r *Empty) Describe() string { return r.describe("be empty") }

func (r *Empty) Validate(parts []string) Violations {
	return r.validateEach(parts, isBlank, r.Describe())
}

func (r *Empty) Fix(parts []string) (Violations, []string) {
	if !r.always() {
		return r.Validate(parts), parts
	}
	return r.fixEach(parts, isBlank, func(string) string { return "" }, r.Describe())
}

// Trim forbids leading and trailing whitespace.
type Trim struct{ base }

func NewTrim(s Settings) *Trim {
	return &Trim{base{kind: KindTrim, settings: s}}
}

func (r *Trim) Describe() string {
	return r.describe("be free of leading and trailing whitespace")
}

func trimmed(s string) bool { return s == strings.TrimSpace(s) }

func (r *Trim) Validate(parts []string) Violations {
	return r.validateEach(parts, trimmed, r.Describe())
}

func (r *Trim) Fix(parts []string) (Violations, []string) {
	if !r.always() {
		return r.Validate(parts), parts
	}
	return r.fixEach(parts, trimmed, strings.TrimSpace, r.Describe())
}

// FullStop controls whether a part ends with a given character. Empty values pass.
type FullStop struct {
	base
	char string
}

func NewFullStop(s Settings, char string) (*FullStop, error) {
	if char == "" {
		return nil, fmt.Errorf("%w: full-stop character must not be empty", ErrInvalidValue)
	}
	return &FullStop{base: base{kind: KindFullStop, settings: s}, char: char}, nil
}

func (r *FullStop) Describe() string { return r.describe(fmt.Sprintf("end with %q", r.char)) }

func (r *FullStop) holds(s string) bool {
	if s == "" {
		return r.always()
	}
	return strings.HasSuffix(s, r.char)
}

func (r *FullStop) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *FullStop) Fix(parts []string) (Violations, []string) {
	return r.fixEach(parts, r.holds, func(s string) string {
		if r.always() {
			return s + r.char
		}
		for strings.HasSuffix(s, r.char) {
			s = strings.TrimSuffix(s, r.char)
		}
		return s
	}, r.Describe())
}

// ExclamationMark controls the "!" that marks a breaking header right before the first colon.
type ExclamationMark struct{ base }

func NewExclamationMark(s Settings) *ExclamationMark {
	return &ExclamationMark{base{kind: KindExclamationMark, settings: s}}
}

func (r *ExclamationMark) Describe() string {
	return r.describe("have an exclamation mark before the first colon")
}

func hasBang(s string) bool {
	idx := strings.Index(s, ":")
	return idx > 0 && s[idx-1] == '!'
}

func (r *ExclamationMark) holds(s string) bool {
	if s == "" {
		return r.always()
	}
	return hasBang(s)
}

func (r *ExclamationMark) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *ExclamationMark) Fix(parts []string) (Violations, []string) {
	return r.fixEach(parts, r.holds, func(s string) string {
		idx := strings.Index(s, ":")
		if idx < 0 {
			// nothing to anchor the mark on
			return s
		}
		if r.always() {
			return s[:idx] + "!" + s[idx:]
		}
		head := strings.TrimRight(s[:idx], "!")
		return head + s[idx:]
	}, r.Describe())
}

// LeadingBlank controls whether a part starts with a blank line. Empty values pass.
type LeadingBlank struct{ base }

func NewLeadingBlank(s Settings) *LeadingBlank {
	return &LeadingBlank{base{kind: KindLeadingBlank, settings: s}}
}

func (r *LeadingBlank) Describe() string { return r.describe("begin with a blank line") }

func (r *LeadingBlank) holds(s string) bool {
	if s == "" {
		return r.always()
	}
	first, _, _ := strings.Cut(s, "\n")
	return isBlank(first)
}

func (r *LeadingBlank) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *LeadingBlank) Fix(parts []string) (Violations, []string) {
	return r.fixEach(parts, r.holds, func(s string) string {
		if r.always() {
			return "\n" + s
		}
		for {
			first, rest, ok := strings.Cut(s, "\n")
			if !ok || !isBlank(first) {
				return s
			}
			s = rest
		}
	}, r.Describe())
}
