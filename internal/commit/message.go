package commit

import (
	"regexp"
	"slices"
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// DefaultBreakingEmoji is appended to the subject of a breaking change.
const DefaultBreakingEmoji = ":boom:"

var paragraphSeparator = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

type options struct {
	delimiter string
	emoji     string
}

// Option configures how a message renders scopes and breaking changes.
type Option func(*options)

// WithScopeDelimiter sets the delimiter used for scopes when a header declares none.
func WithScopeDelimiter(d string) Option {
	return func(o *options) {
		if strings.TrimSpace(d) != "" {
			o.delimiter = d
		}
	}
}

// WithBreakingEmoji sets the emoji appended to breaking subjects. It accepts a shortcode
// such as ":fire:" or a literal emoji; an empty string disables it.
func WithBreakingEmoji(code string) Option {
	return func(o *options) {
		o.emoji = strings.TrimSpace(emoji.Emojize(code))
	}
}

func newOptions(opts []Option) options {
	o := options{
		delimiter: DefaultScopeDelimiter,
		emoji:     strings.TrimSpace(emoji.Emojize(DefaultBreakingEmoji)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Message is a parsed commit message. Footers keep their order and may repeat.
type Message struct {
	Header  Header
	Body    string
	Footers []Footer

	opts options
}

// New creates an empty message.
func New(opts ...Option) *Message {
	return &Message{opts: newOptions(opts)}
}

// Parse reads a commit message. The first line is the header; trailing paragraphs are
// taken as footers for as long as they parse as footers, walking backwards, and the
// paragraphs in between form the body.
func Parse(raw string, opts ...Option) (*Message, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if raw == "" {
		return nil, ErrEmptyMessage
	}

	first, rest, _ := strings.Cut(raw, "\n")
	header, err := ParseHeader(strings.TrimRight(first, " \t"))
	if err != nil {
		return nil, err
	}

	m := New(opts...)
	m.Header = header
	if m.Header.Delimiter == "" && len(m.Header.Scopes) > 0 {
		m.Header.Delimiter = m.opts.delimiter
	}

	rest = trimLeadingBlankLines(rest)
	if rest == "" {
		return m, nil
	}

	paragraphs := paragraphSeparator.Split(rest, -1)
	boundary := len(paragraphs)
	var footers []Footer
	for boundary > 0 {
		fs, err := parseFooterParagraph(paragraphs[boundary-1])
		if err != nil {
			break
		}
		footers = append(fs, footers...)
		boundary--
	}

	m.Body = strings.Join(paragraphs[:boundary], "\n\n")
	m.Footers = footers
	return m, nil
}

func trimLeadingBlankLines(s string) string {
	for {
		line, after, ok := strings.Cut(s, "\n")
		if strings.TrimSpace(line) != "" {
			return s
		}
		if !ok {
			return ""
		}
		s = after
	}
}

// String renders the message with blank lines between header, body and each footer.
func (m *Message) String() string {
	paragraphs := []string{m.Header.String()}
	if strings.TrimSpace(m.Body) != "" {
		paragraphs = append(paragraphs, m.Body)
	}
	for _, f := range m.Footers {
		paragraphs = append(paragraphs, f.String())
	}
	return strings.Join(paragraphs, "\n\n")
}

// Clone returns a deep copy.
func (m *Message) Clone() *Message {
	c := *m
	c.Header = m.Header.clone()
	c.Footers = slices.Clone(m.Footers)
	return &c
}

// Footer returns the first footer with the given token.
func (m *Message) Footer(token string) (Footer, bool) {
	for _, f := range m.Footers {
		if f.Is(token) {
			return f, true
		}
	}
	return Footer{}, false
}

// SetFooter replaces the text of the first footer with the token, or appends a new one.
func (m *Message) SetFooter(token, text string) {
	for i := range m.Footers {
		if m.Footers[i].Is(token) {
			m.Footers[i].Text = text
			return
		}
	}
	m.Footers = append(m.Footers, NewFooter(token, text))
}

// RemoveFooters drops every footer with one of the tokens and reports how many went.
func (m *Message) RemoveFooters(tokens ...string) int {
	before := len(m.Footers)
	m.Footers = slices.DeleteFunc(m.Footers, func(f Footer) bool {
		return slices.ContainsFunc(tokens, f.Is)
	})
	return before - len(m.Footers)
}

// Trailers returns the footer tokens in order.
func (m *Message) Trailers() []string {
	out := make([]string, len(m.Footers))
	for i, f := range m.Footers {
		out[i] = f.Token
	}
	return out
}

// IsBreaking reports a "!" header or a breaking change footer.
func (m *Message) IsBreaking() bool {
	if m.Header.Breaking {
		return true
	}
	return slices.ContainsFunc(m.Footers, Footer.IsBreaking)
}

// Breaking toggles the breaking state. Entering it marks the header with "!", suffixes
// the subject with the breaking emoji and upserts a BREAKING CHANGE footer with reason.
// Leaving it reverts all three and drops both breaking footer spellings.
func (m *Message) Breaking(reason string) {
	suffix := ""
	if m.opts.emoji != "" {
		suffix = " " + m.opts.emoji
	}

	if m.IsBreaking() {
		m.Header.Breaking = false
		if suffix != "" {
			m.Header.Subject = strings.TrimSuffix(m.Header.Subject, suffix)
		}
		m.RemoveFooters(BreakingChange, BreakingChangeHyphen)
		return
	}

	m.Header.Breaking = true
	if suffix != "" && !strings.HasSuffix(m.Header.Subject, suffix) {
		m.Header.Subject += suffix
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		m.SetFooter(BreakingChange, reason)
	}
}
