package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wannabewayno/commitional/internal/rules"
)

// templateParts are the parts whose presence is governed by Empty rules.
var templateParts = []rules.Part{
	rules.PartNamespace, rules.PartType, rules.PartScope, rules.PartSubject, rules.PartBody, rules.PartFooter,
}

// describeOrder lists parts the way a message is read, with namespace last.
var describeOrder = []rules.Part{
	rules.PartType, rules.PartScope, rules.PartSubject, rules.PartHeader,
	rules.PartBody, rules.PartFooter, rules.PartTrailer, rules.PartNamespace,
}

// Props partitions the commit parts by whether they must, may or must not appear.
type Props struct {
	Required  []rules.Part
	Optional  []rules.Part
	Forbidden []rules.Part
}

// Presence reports how a part is constrained.
func (p Props) Presence(part rules.Part) Presence {
	for _, r := range p.Required {
		if r == part {
			return Required
		}
	}
	for _, f := range p.Forbidden {
		if f == part {
			return Forbidden
		}
	}
	return Optional
}

// Presence is the constraint an Empty rule puts on a part.
type Presence int

const (
	Optional Presence = iota
	Required
	Forbidden
)

// AllowedCommitProps derives part presence from the configured Empty rules:
// always-empty forbids a part, never-empty requires it, no rule leaves it optional.
func (e *Engine) AllowedCommitProps() Props {
	var props Props
	for _, part := range templateParts {
		r, ok := e.Rule(rules.ID(part, rules.KindEmpty))
		switch {
		case !ok || r.Severity() == rules.Disabled:
			props.Optional = append(props.Optional, part)
		case r.Condition() == rules.Never:
			props.Required = append(props.Required, part)
		default:
			props.Forbidden = append(props.Forbidden, part)
		}
	}
	return props
}

func placeholder(props Props, part rules.Part) (string, bool) {
	switch props.Presence(part) {
	case Required:
		return "<" + string(part) + ">", true
	case Optional:
		return "<" + string(part) + "?>", true
	default:
		return "", false
	}
}

// Template renders the shape of a valid commit message, e.g.
// "[<namespace?>] <type>(<scope?>): <subject>".
func (e *Engine) Template() string {
	props := e.AllowedCommitProps()

	var header strings.Builder
	if ns, ok := placeholder(props, rules.PartNamespace); ok {
		header.WriteString("[" + ns + "] ")
	}
	if typ, ok := placeholder(props, rules.PartType); ok {
		header.WriteString(typ)
	}
	if scope, ok := placeholder(props, rules.PartScope); ok {
		header.WriteString("(" + scope + ")")
	}
	if header.Len() > 0 {
		header.WriteString(": ")
	}
	if subject, ok := placeholder(props, rules.PartSubject); ok {
		header.WriteString(subject)
	}

	paragraphs := []string{strings.TrimSpace(header.String())}
	if body, ok := placeholder(props, rules.PartBody); ok {
		paragraphs = append(paragraphs, body)
	}
	if footer, ok := placeholder(props, rules.PartFooter); ok {
		paragraphs = append(paragraphs, footer)
	}
	return strings.Join(paragraphs, "\n\n")
}

// Describe documents the configured rules, grouped by part and prefixed by the template.
// Empty rules are expressed by the template itself and are not listed.
func (e *Engine) Describe() string {
	var b strings.Builder
	b.WriteString(e.Template())

	for _, part := range describeOrder {
		var lines []string
		for _, r := range e.Narrow(part).Rules() {
			if r.Kind() == rules.KindEmpty {
				continue
			}
			line := "  - " + capitalize(r.Describe())
			if r.Severity() == rules.Warning {
				line += " (warning)"
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n\n%s:\n%s", capitalize(string(part)), strings.Join(lines, "\n"))
	}

	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Choice is the closed set of values an always-enum rule allows for a part.
type Choice struct {
	Part   rules.Part
	Values []string
}

// Choices lists the enum members callers can offer for each part, in describe order.
// Disabled rules and never-enums are skipped since they do not bound the input.
func (e *Engine) Choices() []Choice {
	byPart := make(map[rules.Part][]string)
	for _, r := range e.RulesOfKind(rules.KindEnum) {
		enum, ok := r.(*rules.Enum)
		if !ok || r.Severity() == rules.Disabled || r.Condition() != rules.Always {
			continue
		}
		byPart[r.Part()] = enum.Values()
	}

	var out []Choice
	for _, part := range describeOrder {
		if values, ok := byPart[part]; ok {
			out = append(out, Choice{Part: part, Values: values})
		}
	}
	return out
}
