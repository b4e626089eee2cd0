// Package commit models a commit message and its parse/serialize round trip.
package commit

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrEmptyMessage    = errors.New("commit message is empty")
	ErrMalformedHeader = errors.New("malformed commit header")
	ErrMalformedFooter = errors.New("malformed commit footer")
)

// DefaultScopeDelimiter joins scopes when a header does not declare its own delimiter.
const DefaultScopeDelimiter = ","

// headerPattern captures "[namespace] type(scope)!: subject". Everything but the subject
// is optional. A colon ending the line closes the prefix too, so "feat:" has an empty subject.
var headerPattern = regexp.MustCompile(`^(?:\[([^\]]*)\] *)?(([\w-]*)(?:\(([^)]*)\))?(!)?(?:: |:$))?(.*)$`)

var scopeDelimiterPattern = regexp.MustCompile(`\s*[,/|]\s*`)

// Header is the first line of a commit message.
type Header struct {
	Namespace string
	Type      string
	Scopes    []string
	// Delimiter separates scopes as written, spaces included (", ", "/", " | ").
	Delimiter string
	Subject   string
	// Breaking is set when the type is followed by "!".
	Breaking bool
}

// ParseHeader parses a single header line.
func ParseHeader(line string) (Header, error) {
	if strings.ContainsAny(line, "\r\n") {
		return Header{}, fmt.Errorf("%w: header must be a single line", ErrMalformedHeader)
	}
	if strings.TrimSpace(line) == "" {
		return Header{}, fmt.Errorf("%w: header is blank", ErrMalformedHeader)
	}

	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return Header{}, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	h := Header{Namespace: m[1], Subject: m[6]}
	prefix, typ, scope, bang := m[2], m[3], m[4], m[5]
	if prefix != "" && typ == "" && scope == "" && bang == "" {
		// a bare ": " is part of the subject
		h.Subject = prefix + h.Subject
		return h, nil
	}

	h.Type = typ
	h.Breaking = bang != ""
	h.Scopes, h.Delimiter = splitScopes(scope)
	return h, nil
}

// splitScopes splits on the first delimiter found and drops duplicate tokens.
func splitScopes(s string) ([]string, string) {
	if strings.TrimSpace(s) == "" {
		return nil, ""
	}

	delim := scopeDelimiterPattern.FindString(s)
	if delim == "" {
		return []string{strings.TrimSpace(s)}, ""
	}

	char := strings.TrimSpace(delim)
	var scopes []string
	for _, tok := range strings.Split(s, char) {
		tok = strings.TrimSpace(tok)
		if tok == "" || slices.Contains(scopes, tok) {
			continue
		}
		scopes = append(scopes, tok)
	}
	return scopes, delim
}

func (h Header) delimiter() string {
	if h.Delimiter == "" {
		return DefaultScopeDelimiter
	}
	return h.Delimiter
}

// Scope returns the scopes joined by the header's delimiter.
func (h Header) Scope() string {
	return strings.Join(h.Scopes, h.delimiter())
}

func (h Header) String() string {
	var b strings.Builder
	if h.Namespace != "" {
		b.WriteString("[" + h.Namespace + "] ")
	}
	if h.Type != "" || len(h.Scopes) > 0 || h.Breaking {
		b.WriteString(h.Type)
		if len(h.Scopes) > 0 {
			b.WriteString("(" + h.Scope() + ")")
		}
		if h.Breaking {
			b.WriteString("!")
		}
		b.WriteString(": ")
	}
	b.WriteString(h.Subject)
	return b.String()
}

func (h Header) clone() Header {
	h.Scopes = slices.Clone(h.Scopes)
	return h
}
