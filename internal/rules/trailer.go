package rules

import (
	"strings"

	"github.com/wannabewayno/commitional/internal/textcase"
)

// Breaking change trailer tokens are kept literally by NormalizeTrailer.
const (
	BreakingChange       = "BREAKING CHANGE"
	BreakingChangeHyphen = "BREAKING-CHANGE"
)

// NormalizeTrailer renders a trailer token in Sentence-Kebab-Case ("signed off by" ->
// "Signed-off-by"). Trailer rule values and parsed footer tokens share this form.
func NormalizeTrailer(token string) string {
	token = strings.TrimSpace(token)
	if IsBreakingTrailer(token) {
		return strings.ToUpper(token)
	}
	return textcase.SentenceKebab(token)
}

// IsBreakingTrailer reports whether token is one of the breaking change spellings.
func IsBreakingTrailer(token string) bool {
	upper := strings.ToUpper(strings.TrimSpace(token))
	return upper == BreakingChange || upper == BreakingChangeHyphen
}

func normalizeTrailers(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = NormalizeTrailer(v)
	}
	return out
}
