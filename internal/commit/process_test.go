package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/engine"
	"github.com/wannabewayno/commitional/internal/rules"
	"github.com/wannabewayno/commitional/internal/testutil"
)

func rule(id string, sev rules.Severity, cond rules.Condition, value any) config.RuleEntry {
	part, kind, err := rules.ParseID(id)
	if err != nil {
		panic(err)
	}
	return config.RuleEntry{ID: id, Part: part, Kind: kind, Severity: sev, Condition: cond, Value: value}
}

func newEngine(t *testing.T, entries ...config.RuleEntry) *engine.Engine {
	t.Helper()
	e, skipped := engine.Build(entries)
	require.Empty(t, skipped)
	return e
}

func labels(results []PartResult) []string {
	var out []string
	for _, r := range results {
		for _, v := range r.Violations() {
			out = append(out, v.String())
		}
	}
	return out
}

func TestProcessWithDefaultRules(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	e := engine.FromRules(ctx, config.DefaultConfig().Rules)
	m, err := Parse("Feat(API): Added stuff.")
	require.NoError(t, err)

	fixed, valid, results := m.Process(ctx, e)

	assert.True(t, valid)
	assert.Empty(t, results)
	assert.Equal(t, "feat(api): added stuff", fixed.String())
	assert.Equal(t, "Feat(API): Added stuff.", m.String(), "receiver is untouched")
}

func TestValidateReportsWithoutFixing(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	e := newEngine(t,
		rule("type-enum", rules.Error, rules.Always, []any{"feat", "fix"}),
		rule("subject-full-stop", rules.Warning, rules.Never, "."),
	)
	m, err := Parse("Feat: Added stuff.")
	require.NoError(t, err)

	valid, results := m.Validate(ctx, e)

	assert.False(t, valid)
	assert.Equal(t, []string{
		"[type:0] The type must always be one of: feat, fix",
		`[subject:0] The subject must never end with "."`,
	}, labels(results))
	assert.Equal(t, "Feat: Added stuff.", m.String())
}

func TestValidateTypeWithEmptySubject(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	e := newEngine(t,
		rule("type-enum", rules.Error, rules.Always, []any{"feat", "fix"}),
		rule("subject-empty", rules.Error, rules.Never, nil),
	)

	for _, raw := range []string{"feat: ", "feat:"} {
		m, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "feat", m.Header.Type, raw)
		assert.Empty(t, m.Header.Subject, raw)

		valid, results := m.Validate(ctx, e)
		assert.False(t, valid)
		assert.Equal(t, []string{"[subject:0] The subject must never be empty"}, labels(results), raw)
	}
}

func TestProcessFooterIndexes(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	e := newEngine(t, rule("footer-min-length", rules.Error, rules.Always, 5))
	m, err := Parse("fix: x\n\nRefs: 1234567\n\nCloses: 1")
	require.NoError(t, err)

	_, valid, results := m.Process(ctx, e)

	assert.False(t, valid)
	require.Len(t, results, 1)
	assert.Equal(t, "footer:1", results[0].Label())
	assert.Equal(t, "Closes", results[0].Filter)
	assert.Equal(t, []string{"[footer:1] The footer must always be at least 5 characters long"}, labels(results))
}

func TestProcessScopes(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	tests := []struct {
		name      string
		rules     []config.RuleEntry
		input     string
		want      string
		wantValid bool
		wantLabel []string
	}{
		{
			name:      "case is fixed per scope",
			rules:     []config.RuleEntry{rule("scope-case", rules.Error, rules.Always, "kebab-case")},
			input:     "feat(userAPI, Core): x",
			want:      "feat(user-api, core): x",
			wantValid: true,
		},
		{
			name:      "missing scope is reported",
			rules:     []config.RuleEntry{rule("scope-empty", rules.Error, rules.Never, nil)},
			input:     "feat: x",
			want:      "feat: x",
			wantLabel: []string{"[scope:0] The scope must never be empty"},
		},
		{
			name:      "enum reports the offending scope",
			rules:     []config.RuleEntry{rule("scope-enum", rules.Error, rules.Always, []any{"api", "db"})},
			input:     "feat(api,ui): x",
			want:      "feat(api,ui): x",
			wantLabel: []string{"[scope:1] The scope must always be one of: api, db"},
		},
		{
			name:      "single scope keeps the first",
			rules:     []config.RuleEntry{rule("scope-allow-multiple", rules.Error, rules.Never, nil)},
			input:     "feat(api,db): x",
			want:      "feat(api): x",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Parse(tt.input)
			require.NoError(t, err)

			fixed, valid, results := m.Process(ctx, newEngine(t, tt.rules...))

			assert.Equal(t, tt.want, fixed.String())
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantLabel, labels(results))
		})
	}
}

func TestProcessHeaderIsReparsed(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	e := newEngine(t, rule("header-max-length", rules.Error, rules.Always, 20))
	m, err := Parse("feat(api): add pagination to list endpoints")
	require.NoError(t, err)

	fixed, valid, _ := m.Process(ctx, e)

	assert.True(t, valid)
	assert.Equal(t, "feat(api): add pagin", fixed.String())
	assert.Equal(t, "add pagin", fixed.Header.Subject)
	assert.Equal(t, []string{"api"}, fixed.Header.Scopes)
}

func TestProcessTrailers(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	tests := []struct {
		name  string
		rule  config.RuleEntry
		input string
		want  string
	}{
		{
			name:  "required trailer is appended",
			rule:  rule("trailer-exists", rules.Error, rules.Always, "Signed-off-by"),
			input: "fix: x\n\nRefs: 1",
			want:  "fix: x\n\nRefs: 1\n\nSigned-off-by: ",
		},
		{
			name:  "required trailer on a message without footers",
			rule:  rule("trailer-exists", rules.Error, rules.Always, "Signed-off-by"),
			input: "fix: x",
			want:  "fix: x\n\nSigned-off-by: ",
		},
		{
			name:  "forbidden trailer is removed",
			rule:  rule("trailer-exists", rules.Error, rules.Never, "Change-Id"),
			input: "fix: x\n\nRefs: 1\n\nChange-Id: I123\n\nCloses: 2",
			want:  "fix: x\n\nRefs: 1\n\nCloses: 2",
		},
		{
			name:  "repeated trailers survive",
			rule:  rule("trailer-case", rules.Error, rules.Always, "sentence-case"),
			input: "fix: x\n\nRefs: 1\n\nRefs: 2",
			want:  "fix: x\n\nRefs: 1\n\nRefs: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Parse(tt.input)
			require.NoError(t, err)

			fixed, valid, _ := m.Process(ctx, newEngine(t, tt.rule))

			assert.True(t, valid)
			assert.Equal(t, tt.want, fixed.String())
		})
	}
}

func TestProcessTrailersAreStable(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	tests := []struct {
		name  string
		rules []config.RuleEntry
		input string
		want  string
	}{
		{
			name:  "required trailer written in title case is already present",
			rules: []config.RuleEntry{rule("trailer-exists", rules.Error, rules.Always, "Co-Authored-By")},
			input: "fix: x\n\nCo-Authored-By: Jane <j@x>",
			want:  "fix: x\n\nCo-authored-by: Jane <j@x>",
		},
		{
			name:  "allowed trailers written in title case",
			rules: []config.RuleEntry{rule("trailer-enum", rules.Error, rules.Always, []string{"Signed-Off-By", "Refs"})},
			input: "fix: x\n\nRefs: 1\n\nSigned-off-by: Jane <j@x>",
			want:  "fix: x\n\nRefs: 1\n\nSigned-off-by: Jane <j@x>",
		},
		{
			name:  "case fix renames the footer in place",
			rules: []config.RuleEntry{rule("trailer-case", rules.Error, rules.Always, "upper-case")},
			input: "fix: x\n\nRefs: 1",
			want:  "fix: x\n\nREFS: 1",
		},
		{
			name: "case fix and a required trailer",
			rules: []config.RuleEntry{
				rule("trailer-exists", rules.Error, rules.Always, "signed off by"),
				rule("trailer-case", rules.Error, rules.Always, "kebab-case"),
			},
			input: "fix: x\n\nRefs: 1",
			want:  "fix: x\n\nrefs: 1\n\nsigned-off-by: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEngine(t, tt.rules...)
			m, err := Parse(tt.input)
			require.NoError(t, err)

			once, valid, _ := m.Process(ctx, e)
			require.True(t, valid)
			assert.Equal(t, tt.want, once.String())

			twice, valid, results := once.Process(ctx, e)
			assert.True(t, valid)
			assert.Empty(t, results)
			assert.Equal(t, once.String(), twice.String())

			valid, results = twice.Validate(ctx, e)
			assert.True(t, valid)
			assert.Empty(t, labels(results))
		})
	}
}

func TestProcessLogsParts(t *testing.T) {
	t.Parallel()
	ctx, getLogs := testutil.NewTestContext(t)

	e := newEngine(t, rule("subject-min-length", rules.Warning, rules.Always, 10))
	m, err := Parse("fix: x")
	require.NoError(t, err)

	_, valid, results := m.Process(ctx, e)

	assert.True(t, valid, "warnings do not fail the message")
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Errors)
	assert.Len(t, results[0].Warnings, 1)
	assert.Contains(t, getLogs(), "subject:0")
}
