package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wannabewayno/commitional/internal/textcase"
)

func settings(part Part, sev Severity, cond Condition) Settings {
	return Settings{Part: part, Severity: sev, Condition: cond}
}

func mustRule(t *testing.T, kind Kind, s Settings, value any) Rule {
	t.Helper()
	r, err := New(kind, s, value, Env{})
	require.NoError(t, err)
	return r
}

func TestCheck_DisabledReturnsInputUnchanged(t *testing.T) {
	t.Parallel()

	r := mustRule(t, KindMaxLength, settings(PartSubject, Disabled, Always), 3)
	input := []string{"far too long"}

	got := Check(r, input, true)
	assert.Equal(t, input, got.Output)
	assert.Nil(t, got.Errors)
	assert.Nil(t, got.Warnings)
}

func TestCheck_SeverityClassification(t *testing.T) {
	t.Parallel()

	input := []string{"feature"}

	warn := Check(mustRule(t, KindEnum, settings(PartType, Warning, Always), []string{"feat"}), input, false)
	assert.Nil(t, warn.Errors)
	assert.Equal(t, Violations{0: "The type must always be one of: feat"}, warn.Warnings)

	fail := Check(mustRule(t, KindEnum, settings(PartType, Error, Always), []string{"feat"}), input, false)
	assert.Nil(t, fail.Warnings)
	assert.Equal(t, Violations{0: "The type must always be one of: feat"}, fail.Errors)
	assert.Equal(t, input, fail.Output)
}

func TestCheck_FixReturnsRewrittenParts(t *testing.T) {
	t.Parallel()

	r := mustRule(t, KindMaxLength, settings(PartSubject, Error, Always), 5)

	got := Check(r, []string{"Hello World"}, true)
	assert.Equal(t, []string{"Hello"}, got.Output)
	assert.Nil(t, got.Errors)

	validated := Check(r, []string{"Hello World"}, false)
	assert.Equal(t, []string{"Hello World"}, validated.Output)
	assert.Len(t, validated.Errors, 1)
}

func TestMaxLengthFix(t *testing.T) {
	t.Parallel()

	r := mustRule(t, KindMaxLength, settings(PartSubject, Error, Always), 5)
	violations, out := r.Fix([]string{"Hello World"})
	assert.Nil(t, violations)
	assert.Equal(t, []string{"Hello"}, out)
}

func TestCaseFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		styles []string
		cond   Condition
		input  []string
		want   []string
	}{
		{name: "kebab always", styles: []string{"kebab-case"}, cond: Always, input: []string{"userAPI"}, want: []string{"user-api"}},
		{name: "sentence always", styles: []string{"sentence-case"}, cond: Always, input: []string{"hello world"}, want: []string{"Hello world"}},
		{name: "first configured style wins", styles: []string{"snake-case", "camel-case"}, cond: Always, input: []string{"Add Parser"}, want: []string{"add_parser"}},
		{name: "never falls back to first allowed style", styles: []string{"lower-case"}, cond: Never, input: []string{"add parser"}, want: []string{"ADD PARSER"}},
		{name: "empty passes", styles: []string{"upper-case"}, cond: Always, input: []string{""}, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := mustRule(t, KindCase, settings(PartScope, Error, tt.cond), tt.styles)
			violations, out := r.Fix(tt.input)
			assert.Nil(t, violations)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFixIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"hello world"},
		{"  padded  "},
		{"Ends with a dot.."},
		{"feat(api): thing"},
		{"feat!!: thing"},
		{""},
		{"\n\nbody text"},
		{"a line that is certainly much longer than twenty characters\n\nshort"},
		{"supercalifragilisticexpialidocious is long"},
		{"one", "two", "three"},
		{"userAPI", "Signed-off-by"},
	}

	type ruleCase struct {
		kind  Kind
		value any
	}
	kinds := []ruleCase{
		{KindEmpty, nil},
		{KindTrim, nil},
		{KindFullStop, "."},
		{KindExclamationMark, nil},
		{KindMaxLength, 10},
		{KindMinLength, 3},
		{KindMaxLineLength, 20},
		{KindLeadingBlank, nil},
		{KindCase, []string{"kebab-case"}},
		{KindCase, []string{"sentence-case", "lower-case"}},
		{KindEnum, []string{"one", "feat"}},
		{KindAllowMultiple, nil},
		{KindExists, []string{"two", "four"}},
	}

	for _, k := range kinds {
		for _, cond := range []Condition{Always, Never} {
			r := mustRule(t, k.kind, settings(PartBody, Error, cond), k.value)
			for _, in := range inputs {
				_, once := r.Fix(in)
				_, twice := r.Fix(once)
				assert.Equal(t, once, twice, "%s %s on %q", r.ID(), cond, in)
			}
		}
	}
}

func TestApplicabilityInversion(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "  ", "hello", "Hello.", "feat!: x", "feat: x", "\nbody", "toolongvalue", "FEAT"}

	type ruleCase struct {
		kind  Kind
		value any
	}
	kinds := []ruleCase{
		{KindEmpty, nil},
		{KindTrim, nil},
		{KindFullStop, "."},
		{KindExclamationMark, nil},
		{KindMaxLength, 6},
		{KindMinLength, 6},
		{KindMaxLineLength, 6},
		{KindLeadingBlank, nil},
		{KindCase, []string{"upper-case"}},
		{KindEnum, []string{"hello", "FEAT"}},
	}

	for _, k := range kinds {
		always := mustRule(t, k.kind, settings(PartSubject, Error, Always), k.value)
		never := mustRule(t, k.kind, settings(PartSubject, Error, Never), k.value)
		for _, in := range inputs {
			if in == "" && (k.kind == KindFullStop || k.kind == KindExclamationMark ||
				k.kind == KindLeadingBlank || k.kind == KindCase || k.kind == KindEnum) {
				// empty values pass in both directions for these rules
				continue
			}
			alwaysValid := always.Validate([]string{in}) == nil
			neverValid := never.Validate([]string{in}) == nil
			assert.NotEqual(t, alwaysValid, neverValid, "%s on %q", always.ID(), in)
		}
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	always := mustRule(t, KindEmpty, settings(PartScope, Error, Always), nil)
	violations, out := always.Fix([]string{"api", " "})
	assert.Nil(t, violations)
	assert.Equal(t, []string{"", " "}, out)

	never := mustRule(t, KindEmpty, settings(PartSubject, Error, Never), nil)
	violations, out = never.Fix([]string{"  "})
	assert.Equal(t, Violations{0: "The subject must never be empty"}, violations)
	assert.Equal(t, []string{"  "}, out)
}

func TestTrimAndFullStop(t *testing.T) {
	t.Parallel()

	trim := mustRule(t, KindTrim, settings(PartSubject, Error, Always), nil)
	_, out := trim.Fix([]string{"  add x \t"})
	assert.Equal(t, []string{"add x"}, out)

	stop := mustRule(t, KindFullStop, settings(PartSubject, Error, Never), nil)
	_, out = stop.Fix([]string{"add x..", "done"})
	assert.Equal(t, []string{"add x", "done"}, out)

	bang := mustRule(t, KindFullStop, settings(PartSubject, Error, Always), "!")
	_, out = bang.Fix([]string{"add x"})
	assert.Equal(t, []string{"add x!"}, out)
	assert.Equal(t, `The subject must always end with "!"`, bang.Describe())
}

func TestExclamationMark(t *testing.T) {
	t.Parallel()

	always := mustRule(t, KindExclamationMark, settings(PartHeader, Error, Always), nil)
	violations, out := always.Fix([]string{"feat(api): add x", "no colon here"})
	assert.Equal(t, []string{"feat(api)!: add x", "no colon here"}, out)
	assert.Equal(t, []int{1}, violations.Indices())

	never := mustRule(t, KindExclamationMark, settings(PartHeader, Error, Never), nil)
	violations, out = never.Fix([]string{"feat!: add x"})
	assert.Nil(t, violations)
	assert.Equal(t, []string{"feat: add x"}, out)
}

func TestMaxLineLengthWrap(t *testing.T) {
	t.Parallel()

	r := mustRule(t, KindMaxLineLength, settings(PartBody, Error, Always), 20)
	body := "This paragraph is definitely longer than twenty characters.\n\n- keep\n- this list"

	violations, out := r.Fix([]string{body})
	assert.Nil(t, violations)
	assert.Equal(t, []string{
		"This paragraph is\ndefinitely longer\nthan twenty\ncharacters.\n\n- keep\n- this list",
	}, out)
}

func TestLeadingBlank(t *testing.T) {
	t.Parallel()

	always := mustRule(t, KindLeadingBlank, settings(PartBody, Error, Always), nil)
	_, out := always.Fix([]string{"body"})
	assert.Equal(t, []string{"\nbody"}, out)

	never := mustRule(t, KindLeadingBlank, settings(PartBody, Error, Never), nil)
	_, out = never.Fix([]string{"\n \nbody"})
	assert.Equal(t, []string{"body"}, out)
}

func TestEnumUnfixable(t *testing.T) {
	t.Parallel()

	r := mustRule(t, KindEnum, settings(PartType, Error, Always), []any{"feat", "fix"})
	violations, out := r.Fix([]string{"feat", "chore"})
	assert.Equal(t, []string{"feat", "chore"}, out)
	assert.Equal(t, []int{1}, violations.Indices())

	enum, ok := r.(*Enum)
	require.True(t, ok)
	assert.Equal(t, []string{"feat", "fix"}, enum.Values())
}

func TestAllowMultiple(t *testing.T) {
	t.Parallel()

	never := mustRule(t, KindAllowMultiple, settings(PartScope, Error, Never), nil)
	assert.Equal(t, []int{1, 2}, never.Validate([]string{"a", "b", "c"}).Indices())
	violations, out := never.Fix([]string{"a", "b", "c"})
	assert.Nil(t, violations)
	assert.Equal(t, []string{"a"}, out)

	always := mustRule(t, KindAllowMultiple, settings(PartScope, Error, Always), nil)
	assert.Nil(t, always.Validate([]string{"a", "b"}))
}

func TestExists(t *testing.T) {
	t.Parallel()

	always := mustRule(t, KindExists, settings(PartTrailer, Error, Always), []string{"Signed-off-by", "Refs"})
	v := always.Validate([]string{"Refs"})
	assert.Equal(t, Violations{0: "The trailer must always include Signed-off-by, Refs (missing Signed-off-by)"}, v)
	_, out := always.Fix([]string{"Refs"})
	assert.Equal(t, []string{"Refs", "Signed-off-by"}, out)

	never := mustRule(t, KindExists, settings(PartTrailer, Error, Never), []string{"WIP"})
	assert.Equal(t, []int{1}, never.Validate([]string{"Refs", "WIP"}).Indices())
	_, out = never.Fix([]string{"Refs", "WIP"})
	assert.Equal(t, []string{"Refs"}, out)
}

func TestFixDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []string{"userAPI", "  x  "}
	r := mustRule(t, KindCase, settings(PartScope, Error, Always), []string{"kebab-case"})
	_, _ = r.Fix(input)
	assert.Equal(t, []string{"userAPI", "  x  "}, input)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    Kind
		value   any
		wantErr error
	}{
		{name: "max length from yaml int", kind: KindMaxLength, value: 72},
		{name: "max length from json float", kind: KindMaxLength, value: float64(72)},
		{name: "max length fractional", kind: KindMaxLength, value: 7.5, wantErr: ErrInvalidValue},
		{name: "max length missing", kind: KindMaxLength, wantErr: ErrInvalidValue},
		{name: "case single string", kind: KindCase, value: "lower"},
		{name: "case unknown style", kind: KindCase, value: []any{"wavy"}, wantErr: ErrInvalidValue},
		{name: "enum mixed list", kind: KindEnum, value: []any{"feat", 3}, wantErr: ErrInvalidValue},
		{name: "full stop default", kind: KindFullStop},
		{name: "alignment without git", kind: KindNamespaceAlignment, value: []string{"apps/*"}, wantErr: ErrNoGitContext},
		{name: "unknown kind", kind: Kind(99), wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := New(tt.kind, settings(PartSubject, Error, Always), tt.value, Env{})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind())
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	part, kind, err := ParseID("subject-max-length")
	require.NoError(t, err)
	assert.Equal(t, PartSubject, part)
	assert.Equal(t, KindMaxLength, kind)

	part, kind, err = ParseID("namespace-namespace-alignment")
	require.NoError(t, err)
	assert.Equal(t, PartNamespace, part)
	assert.Equal(t, KindNamespaceAlignment, kind)

	_, _, err = ParseID("subject-sparkle")
	require.ErrorIs(t, err, ErrUnknownKind)

	_, _, err = ParseID("namespace-alignment")
	require.ErrorIs(t, err, ErrUnknownKind, "the part prefix is required")

	_, _, err = ParseID("tail-empty")
	require.ErrorIs(t, err, ErrUnknownPart)

	assert.Equal(t, "scope-case", ID(PartScope, KindCase))
}

func TestParseSeverityAndCondition(t *testing.T) {
	t.Parallel()

	sev, err := ParseSeverity(1)
	require.NoError(t, err)
	assert.Equal(t, Warning, sev)
	_, err = ParseSeverity(3)
	require.ErrorIs(t, err, ErrInvalidValue)

	cond, err := ParseCondition("Never")
	require.NoError(t, err)
	assert.Equal(t, Never, cond)
	_, err = ParseCondition("sometimes")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestCaseStylesAreCopied(t *testing.T) {
	t.Parallel()

	styles := []textcase.Style{textcase.Lower}
	r, err := NewCase(settings(PartType, Error, Always), styles)
	require.NoError(t, err)
	styles[0] = textcase.Upper
	assert.Equal(t, "The type must always be lower-case", r.Describe())
}
