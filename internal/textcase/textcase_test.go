package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		style Style
		want  string
	}{
		{name: "kebab from camel acronym", input: "userAPI", style: Kebab, want: "user-api"},
		{name: "sentence from lower", input: "hello world", style: Sentence, want: "Hello world"},
		{name: "sentence lowers the tail", input: "hello World", style: Sentence, want: "Hello world"},
		{name: "camel from words", input: "add new parser", style: Camel, want: "addNewParser"},
		{name: "pascal from kebab", input: "add-new-parser", style: Pascal, want: "AddNewParser"},
		{name: "snake from pascal", input: "AddNewParser", style: Snake, want: "add_new_parser"},
		{name: "start case keeps spacing", input: "hello  big world", style: Start, want: "Hello  Big World"},
		{name: "upper", input: "Fix it", style: Upper, want: "FIX IT"},
		{name: "lower", input: "Fix It", style: Lower, want: "fix it"},
		{name: "kebab from mixed separators", input: "Add_New parser", style: Kebab, want: "add-new-parser"},
		{name: "kebab keeps acronyms together", input: "userAPIKey", style: Kebab, want: "user-api-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tt.input, tt.style)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Convert(got, tt.style), "conversion must be idempotent")
		})
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	assert.True(t, Is("user-api", Kebab))
	assert.False(t, Is("userAPI", Kebab))
	assert.True(t, Is("Hello world", Sentence))
	assert.False(t, Is("hello world", Sentence))
	assert.True(t, Is("", Camel))
}

func TestSentenceKebab(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Co-authored-by", SentenceKebab("co authored by"))
	assert.Equal(t, "Signed-off-by", SentenceKebab("Signed-Off-By"))
	assert.Equal(t, "Refs", SentenceKebab("refs"))
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	got, err := ParseStyle("kebab")
	require.NoError(t, err)
	assert.Equal(t, Kebab, got)

	got, err = ParseStyle("Sentence-Case")
	require.NoError(t, err)
	assert.Equal(t, Sentence, got)

	_, err = ParseStyle("spongebob")
	require.Error(t, err)
}
