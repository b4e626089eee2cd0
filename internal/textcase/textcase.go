// Package textcase converts and recognises the named letter-case styles used by case rules.
package textcase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// Style is a named letter-case style.
type Style string

const (
	Lower    Style = "lower-case"
	Upper    Style = "upper-case"
	Camel    Style = "camel-case"
	Kebab    Style = "kebab-case"
	Pascal   Style = "pascal-case"
	Sentence Style = "sentence-case"
	Snake    Style = "snake-case"
	Start    Style = "start-case"
)

// All lists every style in fallback order.
var All = []Style{Lower, Upper, Camel, Kebab, Pascal, Sentence, Snake, Start}

// ParseStyle accepts both the long ("kebab-case") and short ("kebab") names.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range All {
		if name == string(s) || name == strings.TrimSuffix(string(s), "-case") {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown case style %q", name)
}

// Convert rewrites s into the given style. Word boundaries for camel, pascal, kebab and
// snake case come from strcase, which keeps acronyms together ("userAPI" -> "user-api").
func Convert(s string, style Style) string {
	switch style {
	case Lower:
		return strings.ToLower(s)
	case Upper:
		return strings.ToUpper(s)
	case Camel:
		return strcase.ToLowerCamel(s)
	case Pascal:
		return strcase.ToCamel(s)
	case Kebab:
		return strcase.ToKebab(s)
	case Snake:
		return strcase.ToSnake(s)
	case Sentence:
		return capitalize(s)
	case Start:
		return startCase(s)
	}
	return s
}

// Is reports whether s is already written in the given style.
func Is(s string, style Style) bool {
	return Convert(s, style) == s
}

// SentenceKebab renders a token as Sentence-Kebab-Case ("co-authored by" -> "Co-authored-by").
func SentenceKebab(s string) string {
	return capitalize(strcase.ToKebab(s))
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func startCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			atWordStart = true
			b.WriteRune(r)
		case atWordStart:
			atWordStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
