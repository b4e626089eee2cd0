package commit

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type jsonFooter struct {
	Token string `json:"token"`
	Text  string `json:"text"`
}

type jsonMessage struct {
	Namespace string       `json:"namespace,omitempty"`
	Type      string       `json:"type,omitempty"`
	Scope     []string     `json:"scope,omitempty"`
	Subject   string       `json:"subject"`
	Body      string       `json:"body,omitempty"`
	Footers   []jsonFooter `json:"footers,omitempty"`
	Breaking  bool         `json:"breaking,omitempty"`
}

// FromJSON builds a message from its flat JSON form. A breaking message without a
// breaking footer is marked with "!" only.
func FromJSON(data []byte, opts ...Option) (*Message, error) {
	var jm jsonMessage
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("failed to decode commit message: %w", err)
	}
	if strings.ContainsAny(jm.Subject, "\r\n") {
		return nil, fmt.Errorf("%w: subject must be a single line", ErrMalformedHeader)
	}

	m := New(opts...)
	m.Header = Header{
		Namespace: jm.Namespace,
		Type:      jm.Type,
		Subject:   jm.Subject,
		Breaking:  jm.Breaking,
	}
	for _, s := range jm.Scope {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(m.Header.Scopes, s) {
			m.Header.Scopes = append(m.Header.Scopes, s)
		}
	}
	if len(m.Header.Scopes) > 0 {
		m.Header.Delimiter = m.opts.delimiter
	}

	m.Body = strings.TrimSpace(jm.Body)
	for _, f := range jm.Footers {
		if strings.TrimSpace(f.Token) == "" {
			return nil, fmt.Errorf("%w: footer without token", ErrMalformedFooter)
		}
		m.Footers = append(m.Footers, NewFooter(f.Token, f.Text))
	}

	return m, nil
}

// MarshalJSON renders the flat JSON form.
func (m *Message) MarshalJSON() ([]byte, error) {
	jm := jsonMessage{
		Namespace: m.Header.Namespace,
		Type:      m.Header.Type,
		Scope:     m.Header.Scopes,
		Subject:   m.Header.Subject,
		Body:      m.Body,
		Breaking:  m.IsBreaking(),
	}
	for _, f := range m.Footers {
		jm.Footers = append(jm.Footers, jsonFooter{Token: f.Token, Text: f.Text})
	}

	data, err := json.Marshal(jm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode commit message: %w", err)
	}
	return data, nil
}

