package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLength caps the rune length of each element. Fixing truncates.
type MaxLength struct {
	base
	max int
}

func NewMaxLength(s Settings, n int) (*MaxLength, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: max-length must not be negative", ErrInvalidValue)
	}
	return &MaxLength{base: base{kind: KindMaxLength, settings: s}, max: n}, nil
}

func (r *MaxLength) Describe() string {
	return r.describe(fmt.Sprintf("be at most %d characters long", r.max))
}

func (r *MaxLength) holds(s string) bool { return utf8.RuneCountInString(s) <= r.max }

func (r *MaxLength) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *MaxLength) Fix(parts []string) (Violations, []string) {
	if !r.always() {
		return r.Validate(parts), parts
	}
	return r.fixEach(parts, r.holds, func(s string) string {
		return string([]rune(s)[:r.max])
	}, r.Describe())
}

// MinLength requires a minimum rune length. It cannot be fixed.
type MinLength struct {
	base
	min int
}

func NewMinLength(s Settings, n int) (*MinLength, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: min-length must not be negative", ErrInvalidValue)
	}
	return &MinLength{base: base{kind: KindMinLength, settings: s}, min: n}, nil
}

func (r *MinLength) Describe() string {
	return r.describe(fmt.Sprintf("be at least %d characters long", r.min))
}

func (r *MinLength) Validate(parts []string) Violations {
	return r.validateEach(parts, func(s string) bool {
		return utf8.RuneCountInString(s) >= r.min
	}, r.Describe())
}

func (r *MinLength) Fix(parts []string) (Violations, []string) {
	return r.Validate(parts), parts
}

// MaxLineLength caps every line of each element. Fixing re-wraps offending paragraphs greedily.
type MaxLineLength struct {
	base
	max int
}

func NewMaxLineLength(s Settings, n int) (*MaxLineLength, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: max-line-length must be positive", ErrInvalidValue)
	}
	return &MaxLineLength{base: base{kind: KindMaxLineLength, settings: s}, max: n}, nil
}

func (r *MaxLineLength) Describe() string {
	return r.describe(fmt.Sprintf("have lines at most %d characters long", r.max))
}

func (r *MaxLineLength) holds(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		if utf8.RuneCountInString(line) > r.max {
			return false
		}
	}
	return true
}

func (r *MaxLineLength) Validate(parts []string) Violations {
	return r.validateEach(parts, r.holds, r.Describe())
}

func (r *MaxLineLength) Fix(parts []string) (Violations, []string) {
	if !r.always() {
		return r.Validate(parts), parts
	}
	return r.fixEach(parts, r.holds, r.wrap, r.Describe())
}

// wrap re-flows only the paragraphs that contain an overlong line.
// A single word longer than the limit keeps a line of its own.
func (r *MaxLineLength) wrap(s string) string {
	paragraphs := strings.Split(s, "\n\n")
	for i, p := range paragraphs {
		if r.holds(p) {
			continue
		}

		var (
			lines []string
			line  string
		)
		for _, word := range strings.Fields(p) {
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= r.max:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
		paragraphs[i] = strings.Join(lines, "\n")
	}
	return strings.Join(paragraphs, "\n\n")
}
