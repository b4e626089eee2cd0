package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticGit(files ...string) GitContextProvider {
	return GitContextFunc(func() (GitContext, error) {
		return GitContext{Files: files, IsStaged: true}, nil
	})
}

func TestNamespaceAlignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		input []string
		want  Violations
	}{
		{
			name:  "declared namespace mismatches",
			files: []string{"apps/myapp/x.ts"},
			input: []string{"otherapp"},
			want:  Violations{0: `Files in apps/myapp require namespace "myapp", got "otherapp"`},
		},
		{
			name:  "spans namespaces",
			files: []string{"apps/myapp/a.ts", "libs/shared/b.ts"},
			input: []string{"myapp"},
			want:  Violations{0: "Commit spans multiple namespaces: myapp, shared"},
		},
		{
			name:  "aligned",
			files: []string{"apps/myapp/a.ts"},
			input: []string{"myapp"},
		},
		{
			name:  "no namespace needed",
			files: []string{"README.md"},
			input: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := New(KindNamespaceAlignment, settings(PartNamespace, Error, Always),
				[]any{"apps/*", "libs/*"}, Env{Git: staticGit(tt.files...)})
			require.NoError(t, err)

			assert.Equal(t, tt.want, r.Validate(tt.input))

			violations, out := r.Fix(tt.input)
			assert.Equal(t, tt.want, violations)
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestNamespaceAlignment_GitFailure(t *testing.T) {
	t.Parallel()

	git := GitContextFunc(func() (GitContext, error) {
		return GitContext{}, errors.New("not a repository")
	})
	r, err := NewNamespaceAlignment(settings(PartNamespace, Error, Always), []string{"apps/*"}, git)
	require.NoError(t, err)

	got := r.Validate([]string{"myapp"})
	assert.Equal(t, Violations{0: "unable to determine changed files: not a repository"}, got)
}

func TestNamespaceAlignment_Never(t *testing.T) {
	t.Parallel()

	r, err := NewNamespaceAlignment(settings(PartNamespace, Warning, Never), []string{"apps/*"}, staticGit("apps/web/a.ts"))
	require.NoError(t, err)

	assert.Equal(t, Violations{0: "The namespace must never match the namespace of the changed files"}, r.Validate([]string{"web"}))
	assert.Nil(t, r.Validate([]string{"api"}))
}
