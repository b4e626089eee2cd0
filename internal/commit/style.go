package commit

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	namespaceStyle = color.New(color.FgMagenta, color.Bold)
	typeStyle      = color.New(color.FgCyan, color.Bold)
	scopeStyle     = color.New(color.FgYellow)
	subjectStyle   = color.New(color.Bold)
	tokenStyle     = color.New(color.FgGreen)
	breakingStyle  = color.New(color.FgRed, color.Bold)
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Unstyle strips ANSI colour sequences.
func Unstyle(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Styled renders the message like String with each part coloured. Colour follows
// fatih/color's terminal detection.
func (m *Message) Styled() string {
	paragraphs := []string{m.styledHeader()}
	if strings.TrimSpace(m.Body) != "" {
		paragraphs = append(paragraphs, m.Body)
	}
	for _, f := range m.Footers {
		style := tokenStyle
		if f.IsBreaking() {
			style = breakingStyle
		}
		sep := f.Separator
		if sep == "" {
			sep = SeparatorColon
		}
		paragraphs = append(paragraphs, style.Sprint(f.Token)+sep+f.Text)
	}
	return strings.Join(paragraphs, "\n\n")
}

func (m *Message) styledHeader() string {
	h := m.Header
	var b strings.Builder
	if h.Namespace != "" {
		b.WriteString("[" + namespaceStyle.Sprint(h.Namespace) + "] ")
	}
	if h.Type != "" || len(h.Scopes) > 0 || h.Breaking {
		b.WriteString(typeStyle.Sprint(h.Type))
		if len(h.Scopes) > 0 {
			b.WriteString("(" + scopeStyle.Sprint(h.Scope()) + ")")
		}
		if h.Breaking {
			b.WriteString(breakingStyle.Sprint("!"))
		}
		b.WriteString(": ")
	}
	b.WriteString(subjectStyle.Sprint(h.Subject))
	return b.String()
}
