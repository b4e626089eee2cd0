// Package engine orchestrates configured rules per commit part.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shu-go/orderedmap"
	"github.com/wannabewayno/commitional/internal/rules"
)

// Engine is an immutable, ordered set of rules keyed by rule id.
// It is safe for concurrent use once built.
type Engine struct {
	rules *orderedmap.OrderedMap[string, rules.Rule]
}

// New builds an engine from rules. A later rule with the same id replaces an earlier one.
func New(rs ...rules.Rule) *Engine {
	m := orderedmap.New[string, rules.Rule]()
	for _, r := range rs {
		if r == nil {
			continue
		}
		m.Set(r.ID(), r)
	}
	return &Engine{rules: m}
}

// Rules returns the rules in declaration order.
func (e *Engine) Rules() []rules.Rule {
	keys := e.rules.Keys()
	out := make([]rules.Rule, 0, len(keys))
	for _, k := range keys {
		if r, ok := e.rules.Get(k); ok {
			out = append(out, r)
		}
	}
	return out
}

// Len reports the number of rules.
func (e *Engine) Len() int { return e.rules.Len() }

// Rule looks a rule up by id.
func (e *Engine) Rule(id string) (rules.Rule, bool) {
	return e.rules.Get(id)
}

// Narrow returns a sub-engine holding only the rules whose id starts with "<part>-".
func (e *Engine) Narrow(part rules.Part) *Engine {
	prefix := string(part) + "-"
	var out []rules.Rule
	for _, r := range e.Rules() {
		if strings.HasPrefix(r.ID(), prefix) {
			out = append(out, r)
		}
	}
	return New(out...)
}

// RulesOfKind returns every rule of the given kind, e.g. to discover enum choices.
func (e *Engine) RulesOfKind(kind rules.Kind) []rules.Rule {
	var out []rules.Rule
	for _, r := range e.Rules() {
		if r.Kind() == kind {
			out = append(out, r)
		}
	}
	return out
}

// Violation is one rule failure on one element of a part.
type Violation struct {
	Part     rules.Part
	Index    int
	Rule     string
	Severity rules.Severity
	Message  string
}

// String renders the canonical "[<part>:<index>] <message>" form.
func (v Violation) String() string {
	return fmt.Sprintf("[%s:%d] %s", v.Part, v.Index, v.Message)
}

// Result is the outcome of running a chain of rules over some parts.
type Result struct {
	Output   []string
	Errors   []Violation
	Warnings []Violation
}

// Valid reports whether no error-level violation was found.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Validate runs every rule without fixing.
func (e *Engine) Validate(parts []string) Result {
	return e.Check(parts, false)
}

// Parse runs every rule and fixes what it can.
func (e *Engine) Parse(parts []string) Result {
	return e.Check(parts, true)
}

// Check runs the rules in order, feeding each rule's output into the next.
// Violations are collected and the chain always continues.
func (e *Engine) Check(parts []string, attemptFix bool) Result {
	res := Result{Output: parts}
	for _, r := range e.Rules() {
		cr := rules.Check(r, res.Output, attemptFix)
		res.Output = cr.Output
		res.Errors = append(res.Errors, violations(r, cr.Errors)...)
		res.Warnings = append(res.Warnings, violations(r, cr.Warnings)...)
	}
	return res
}

func violations(r rules.Rule, v rules.Violations) []Violation {
	if len(v) == 0 {
		return nil
	}
	out := make([]Violation, 0, len(v))
	for _, i := range v.Indices() {
		out = append(out, Violation{
			Part:     r.Part(),
			Index:    i,
			Rule:     r.ID(),
			Severity: r.Severity(),
			Message:  v[i],
		})
	}
	return out
}

// SortViolations orders violations by part documentation order, then index.
func SortViolations(vs []Violation) {
	rank := make(map[rules.Part]int, len(rules.Parts))
	for i, p := range rules.Parts {
		rank[p] = i
	}
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Part != vs[j].Part {
			return rank[vs[i].Part] < rank[vs[j].Part]
		}
		return vs[i].Index < vs[j].Index
	})
}
