package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/wannabewayno/commitional/internal/textcase"
)

// Kind identifies a concrete rule type.
type Kind int

const (
	KindEmpty Kind = iota + 1
	KindTrim
	KindFullStop
	KindExclamationMark
	KindMaxLength
	KindMinLength
	KindMaxLineLength
	KindLeadingBlank
	KindCase
	KindEnum
	KindAllowMultiple
	KindExists
	KindNamespaceAlignment
)

var kindNames = map[Kind]string{
	KindEmpty:              "empty",
	KindTrim:               "trim",
	KindFullStop:           "full-stop",
	KindExclamationMark:    "exclamation-mark",
	KindMaxLength:          "max-length",
	KindMinLength:          "min-length",
	KindMaxLineLength:      "max-line-length",
	KindLeadingBlank:       "leading-blank",
	KindCase:               "case",
	KindEnum:               "enum",
	KindAllowMultiple:      "allow-multiple",
	KindExists:             "exists",
	KindNamespaceAlignment: "namespace-alignment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a kind name such as "max-length".
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ID renders a rule id: "<part>-<kind>".
func ID(part Part, kind Kind) string {
	return string(part) + "-" + kind.String()
}

// ParseID splits a rule id into its part and kind.
func ParseID(id string) (Part, Kind, error) {
	partName, kindName, ok := strings.Cut(strings.TrimSpace(id), "-")
	if !ok {
		return "", 0, fmt.Errorf("%w: rule id %q has no kind", ErrUnknownKind, id)
	}
	part, err := ParsePart(partName)
	if err != nil {
		return "", 0, err
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return "", 0, err
	}
	return part, kind, nil
}

// Env carries collaborators some rules need at evaluation time.
type Env struct {
	Git GitContextProvider
}

// New builds the rule of the given kind. value is the optional third element of a rule
// configuration entry, as decoded from YAML or JSON.
func New(kind Kind, s Settings, value any, env Env) (Rule, error) {
	if s.Condition == "" {
		s.Condition = Always
	}

	switch kind {
	case KindEmpty:
		return NewEmpty(s), nil
	case KindTrim:
		return NewTrim(s), nil
	case KindFullStop:
		char := "."
		if value != nil {
			v, err := stringValue(value)
			if err != nil {
				return nil, err
			}
			char = v
		}
		return build(NewFullStop(s, char))
	case KindExclamationMark:
		return NewExclamationMark(s), nil
	case KindMaxLength:
		n, err := intValue(value)
		if err != nil {
			return nil, err
		}
		return build(NewMaxLength(s, n))
	case KindMinLength:
		n, err := intValue(value)
		if err != nil {
			return nil, err
		}
		return build(NewMinLength(s, n))
	case KindMaxLineLength:
		n, err := intValue(value)
		if err != nil {
			return nil, err
		}
		return build(NewMaxLineLength(s, n))
	case KindLeadingBlank:
		return NewLeadingBlank(s), nil
	case KindCase:
		names, err := stringsValue(value)
		if err != nil {
			return nil, err
		}
		styles := make([]textcase.Style, 0, len(names))
		for _, n := range names {
			style, err := textcase.ParseStyle(n)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			styles = append(styles, style)
		}
		return build(NewCase(s, styles))
	case KindEnum:
		values, err := stringsValue(value)
		if err != nil {
			return nil, err
		}
		if s.Part == PartTrailer {
			values = normalizeTrailers(values)
		}
		return build(NewEnum(s, values))
	case KindAllowMultiple:
		return NewAllowMultiple(s), nil
	case KindExists:
		values, err := stringsValue(value)
		if err != nil {
			return nil, err
		}
		if s.Part == PartTrailer {
			values = normalizeTrailers(values)
		}
		return build(NewExists(s, values))
	case KindNamespaceAlignment:
		dirs, err := stringsValue(value)
		if err != nil {
			return nil, err
		}
		return build(NewNamespaceAlignment(s, dirs, env.Git))
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// build drops the typed nil a failed constructor returns alongside its error.
func build(r Rule, err error) (Rule, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func intValue(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: expected a whole number, got %v", ErrInvalidValue, value)
}

func stringValue(value any) (string, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: expected a string, got %v", ErrInvalidValue, value)
}

// stringsValue accepts a single string or a list of strings.
func stringsValue(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: expected a list of strings, got %v", ErrInvalidValue, value)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: expected a list of strings, got %v", ErrInvalidValue, value)
}
