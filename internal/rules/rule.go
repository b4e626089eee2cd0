// Package rules defines the commit-part rule contract and every concrete rule.
//
// A rule owns a predicate over an ordered list of strings ("parts"), so single-valued
// commit parts (a subject) and multi-valued ones (scopes, trailers) share one contract.
// Rules are stateless and never mutate their input.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownPart  = errors.New("unknown commit part")
	ErrUnknownKind  = errors.New("unknown rule kind")
	ErrInvalidValue = errors.New("invalid rule value")
)

// Severity controls how a violation is reported.
type Severity int

const (
	Disabled Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity accepts the numeric levels 0, 1 and 2.
func ParseSeverity(level int) (Severity, error) {
	if level < int(Disabled) || level > int(Error) {
		return Disabled, fmt.Errorf("%w: severity %d must be 0, 1 or 2", ErrInvalidValue, level)
	}
	return Severity(level), nil
}

// Condition says whether a rule's predicate must or must not hold.
type Condition string

const (
	Always Condition = "always"
	Never  Condition = "never"
)

// ParseCondition parses "always" or "never".
func ParseCondition(s string) (Condition, error) {
	switch Condition(strings.ToLower(strings.TrimSpace(s))) {
	case Always:
		return Always, nil
	case Never:
		return Never, nil
	}
	return "", fmt.Errorf("%w: condition %q must be always or never", ErrInvalidValue, s)
}

// Part is the commit-message part a rule targets.
type Part string

const (
	PartNamespace Part = "namespace"
	PartType      Part = "type"
	PartScope     Part = "scope"
	PartSubject   Part = "subject"
	PartHeader    Part = "header"
	PartBody      Part = "body"
	PartFooter    Part = "footer"
	PartTrailer   Part = "trailer"
)

// Parts lists every part in documentation order.
var Parts = []Part{
	PartNamespace, PartType, PartScope, PartSubject, PartHeader, PartBody, PartFooter, PartTrailer,
}

// ParsePart validates a part name.
func ParsePart(s string) (Part, error) {
	for _, p := range Parts {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPart, s)
}

// Violations maps the index of an offending element to its message.
type Violations map[int]string

func (v Violations) add(i int, msg string) Violations {
	if v == nil {
		v = make(Violations)
	}
	v[i] = msg
	return v
}

// Indices returns the violating indices in ascending order.
func (v Violations) Indices() []int {
	out := make([]int, 0, len(v))
	for i := range v {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Rule validates and repairs the parts of one commit-message part.
type Rule interface {
	ID() string
	Part() Part
	Kind() Kind
	Severity() Severity
	Condition() Condition

	// Validate returns nil when every element satisfies the rule.
	Validate(parts []string) Violations
	// Fix returns rewritten parts plus whatever could not be repaired.
	// Unfixable rules return the input with Validate's violations.
	Fix(parts []string) (Violations, []string)
	// Describe reads "The <part> must <always|never> <predicate>".
	Describe() string
}

// Settings is the configuration shared by every rule.
type Settings struct {
	Part      Part
	Severity  Severity
	Condition Condition
}

type base struct {
	kind     Kind
	settings Settings
}

func (b base) ID() string           { return ID(b.settings.Part, b.kind) }
func (b base) Part() Part           { return b.settings.Part }
func (b base) Kind() Kind           { return b.kind }
func (b base) Severity() Severity   { return b.settings.Severity }
func (b base) Condition() Condition { return b.settings.Condition }

func (b base) always() bool { return b.settings.Condition != Never }

func (b base) describe(predicate string) string {
	cond := b.settings.Condition
	if cond == "" {
		cond = Always
	}
	return fmt.Sprintf("The %s must %s %s", b.settings.Part, cond, predicate)
}

// validateEach reports every element whose predicate disagrees with the condition.
func (b base) validateEach(parts []string, holds func(string) bool, msg string) Violations {
	var v Violations
	for i, p := range parts {
		if holds(p) != b.always() {
			v = v.add(i, msg)
		}
	}
	return v
}

// fixEach rewrites offending elements into a new slice and re-validates the result.
func (b base) fixEach(parts []string, holds func(string) bool, fix func(string) string, msg string) (Violations, []string) {
	out := make([]string, len(parts))
	for i, p := range parts {
		if holds(p) != b.always() {
			p = fix(p)
		}
		out[i] = p
	}
	return b.validateEach(out, holds, msg), out
}

// CheckResult is the outcome of running one rule over some parts.
type CheckResult struct {
	Output   []string
	Errors   Violations
	Warnings Violations
}

// Check runs a rule and classifies its violations by severity. A disabled rule returns
// the input untouched. Without attemptFix the input is only validated.
func Check(r Rule, parts []string, attemptFix bool) CheckResult {
	if r.Severity() == Disabled {
		return CheckResult{Output: parts}
	}

	output := parts
	var violations Violations
	if attemptFix {
		violations, output = r.Fix(parts)
	} else {
		violations = r.Validate(parts)
	}

	switch {
	case len(violations) == 0:
		return CheckResult{Output: output}
	case r.Severity() == Warning:
		return CheckResult{Output: output, Warnings: violations}
	default:
		return CheckResult{Output: output, Errors: violations}
	}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
