package commit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wannabewayno/commitional/internal/rules"
)

const (
	BreakingChange       = rules.BreakingChange
	BreakingChangeHyphen = rules.BreakingChangeHyphen

	// SeparatorColon and SeparatorHash are the two git trailer separators.
	SeparatorColon = ": "
	SeparatorHash  = " #"
)

var footerPattern = regexp.MustCompile(`^(BREAKING CHANGE|[\w-]+)(: | #)(.*)$`)

// Footer is a "Token: text" trailer after the body.
type Footer struct {
	Token     string
	Separator string
	Text      string
}

// NewFooter builds a footer with a normalized token and the colon separator.
func NewFooter(token, text string) Footer {
	return Footer{Token: NormalizeToken(token), Separator: SeparatorColon, Text: text}
}

// NormalizeToken renders a token in Sentence-Kebab-Case ("signed off by" -> "Signed-off-by").
// The breaking change tokens are kept literally.
func NormalizeToken(token string) string { return rules.NormalizeTrailer(token) }

// IsBreaking reports whether the footer announces a breaking change.
func (f Footer) IsBreaking() bool { return rules.IsBreakingTrailer(f.Token) }

// Is reports whether the footer carries token, whatever case either is written in.
func (f Footer) Is(token string) bool { return NormalizeToken(f.Token) == NormalizeToken(token) }

// ParseFooter parses one footer. Lines after the first continue its text.
// Input whose first line is not "Token: text" or "Token #text" is rejected.
func ParseFooter(s string) (Footer, error) {
	first, rest, hasRest := strings.Cut(s, "\n")
	f, ok := matchFooter(first)
	if !ok {
		return Footer{}, fmt.Errorf("%w: %q", ErrMalformedFooter, first)
	}
	if hasRest {
		f.Text += "\n" + rest
	}
	return f, nil
}

func matchFooter(line string) (Footer, bool) {
	m := footerPattern.FindStringSubmatch(line)
	if m == nil {
		return Footer{}, false
	}
	return Footer{Token: NormalizeToken(m[1]), Separator: m[2], Text: m[3]}, true
}

// parseFooterParagraph splits a paragraph into footers. Every line that looks like a
// trailer starts a new footer; other lines continue the previous one.
func parseFooterParagraph(p string) ([]Footer, error) {
	lines := strings.Split(p, "\n")
	var out []Footer
	for i, line := range lines {
		if f, ok := matchFooter(line); ok {
			out = append(out, f)
			continue
		}
		if i == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFooter, line)
		}
		out[len(out)-1].Text += "\n" + line
	}
	return out, nil
}

func (f Footer) String() string {
	sep := f.Separator
	if sep == "" {
		sep = SeparatorColon
	}
	return f.Token + sep + f.Text
}
