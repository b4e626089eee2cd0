package commit

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/wannabewayno/commitional/internal/engine"
	"github.com/wannabewayno/commitional/internal/logging"
	"github.com/wannabewayno/commitional/internal/rules"
)

// PartResult records the violations one part of a message produced.
type PartResult struct {
	Part rules.Part
	// Index is the footer position for footer results and 0 otherwise.
	Index int
	// Filter is the footer token a footer result belongs to.
	Filter   string
	Errors   []engine.Violation
	Warnings []engine.Violation
}

// Label renders the "<part>:<index>" prefix used in reports.
func (r PartResult) Label() string {
	return fmt.Sprintf("%s:%d", r.Part, r.Index)
}

// Valid reports whether the part has no errors.
func (r PartResult) Valid() bool { return len(r.Errors) == 0 }

// Violations returns errors followed by warnings.
func (r PartResult) Violations() []engine.Violation {
	return append(slices.Clone(r.Errors), r.Warnings...)
}

// Process runs every rule over the message and repairs what it can. The receiver is left
// untouched; the repaired message is returned along with whether it is free of errors.
func (m *Message) Process(ctx context.Context, e *engine.Engine) (*Message, bool, []PartResult) {
	return m.run(ctx, e, true)
}

// Validate runs every rule over the message without repairing anything.
func (m *Message) Validate(ctx context.Context, e *engine.Engine) (bool, []PartResult) {
	_, valid, results := m.run(ctx, e, false)
	return valid, results
}

type processor struct {
	e       *engine.Engine
	fix     bool
	results []PartResult
}

func (p *processor) check(part rules.Part, index int, filter string, input []string) []string {
	res := p.e.Narrow(part).Check(input, p.fix)
	if len(res.Errors) > 0 || len(res.Warnings) > 0 {
		p.results = append(p.results, PartResult{
			Part:     part,
			Index:    index,
			Filter:   filter,
			Errors:   reindex(res.Errors, index),
			Warnings: reindex(res.Warnings, index),
		})
	}
	return res.Output
}

// reindex moves violations of a single-element check onto the element's real position.
func reindex(vs []engine.Violation, index int) []engine.Violation {
	if index == 0 {
		return vs
	}
	out := slices.Clone(vs)
	for i := range out {
		out[i].Index += index
	}
	return out
}

// scalar runs rules on a single value.
func (p *processor) scalar(part rules.Part, index int, filter, value string) string {
	out := p.check(part, index, filter, []string{value})
	if len(out) == 0 {
		return ""
	}
	return out[0]
}

// list runs rules on a multi-valued part. An empty list is checked as one empty value so
// presence rules still apply; blanks are dropped from the result, duplicates too when unique.
func (p *processor) list(part rules.Part, values []string, unique bool) []string {
	input := values
	if len(input) == 0 {
		input = []string{""}
	}
	var out []string
	for _, v := range p.check(part, 0, "", input) {
		if strings.TrimSpace(v) == "" || (unique && slices.Contains(out, v)) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (m *Message) run(ctx context.Context, e *engine.Engine, fix bool) (*Message, bool, []PartResult) {
	p := &processor{e: e, fix: fix}
	out := m.Clone()

	out.Header.Type = p.scalar(rules.PartType, 0, "", m.Header.Type)
	out.Header.Scopes = p.list(rules.PartScope, m.Header.Scopes, true)
	out.Header.Subject = p.scalar(rules.PartSubject, 0, "", m.Header.Subject)
	out.Header.Namespace = p.scalar(rules.PartNamespace, 0, "", m.Header.Namespace)

	header := out.Header.String()
	if fixed := p.scalar(rules.PartHeader, 0, "", header); fixed != header {
		if h, err := ParseHeader(fixed); err == nil {
			if h.Delimiter == "" {
				h.Delimiter = out.Header.Delimiter
			}
			out.Header = h
		} else {
			logging.Get(ctx).Debug().Err(err).Str("header", fixed).Msg("repaired header did not parse")
		}
	}

	out.Body = p.scalar(rules.PartBody, 0, "", m.Body)

	for i := range out.Footers {
		f := &out.Footers[i]
		f.Text = p.scalar(rules.PartFooter, i, f.Token, f.Text)
	}

	out.Footers = reconcileTrailers(out.Footers, p.list(rules.PartTrailer, out.Trailers(), false))

	valid := true
	for _, r := range p.results {
		if !r.Valid() {
			valid = false
		}
		logging.Get(ctx).Debug().
			Str("part", r.Label()).
			Int("errors", len(r.Errors)).
			Int("warnings", len(r.Warnings)).
			Msg("part processed")
	}

	if !fix {
		return m.Clone(), valid, p.results
	}
	return out, valid, p.results
}

// reconcileTrailers maps the token list produced by trailer rules back onto footers.
// Tokens are matched to footers in order by their normalized form, so a case fix renames
// a footer in place; tokens with no footer become empty footers and footers with no
// token are dropped. Tokens are kept as the rules wrote them.
func reconcileTrailers(footers []Footer, tokens []string) []Footer {
	used := make([]bool, len(footers))
	out := make([]Footer, 0, len(tokens))
	for _, tok := range tokens {
		matched := false
		for i, f := range footers {
			if !used[i] && f.Is(tok) {
				used[i] = true
				f.Token = tok
				out = append(out, f)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, Footer{Token: tok, Separator: SeparatorColon})
		}
	}
	return out
}
