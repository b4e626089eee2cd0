// Package config loads commitional rule configuration.
//
// Rules are declared as "<part>-<kind>": [severity, "always"|"never", value?]. Declaration order is
// kept. Malformed entries never fail a partial load; they are reported as ValidationWarnings and dropped.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"github.com/wannabewayno/commitional/internal/namespace"
	"github.com/wannabewayno/commitional/internal/rules"
	"gopkg.in/yaml.v3"
)

var ErrInvalidRule = errors.New("invalid rule entry")

const (
	DefaultBreakingEmoji  = ":boom:"
	DefaultScopeDelimiter = ","
)

type Config struct {
	Rules      []RuleEntry   `yaml:"-"`
	Namespaces []string      `yaml:"namespaces,omitempty"`
	Breaking   Breaking      `yaml:"breaking,omitempty"`
	Scope      Scope         `yaml:"scope,omitempty"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
}

type Breaking struct {
	// Emoji is a shortcode such as ":boom:" or a literal emoji.
	Emoji string `yaml:"emoji,omitempty"`
}

type Scope struct {
	Delimiter string `yaml:"delimiter,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// RuleEntry is one parsed rule declaration.
type RuleEntry struct {
	ID        string
	Part      rules.Part
	Kind      rules.Kind
	Severity  rules.Severity
	Condition rules.Condition
	Value     any
}

// ValidationWarning records a rule entry that was dropped during partial loading.
type ValidationWarning struct {
	RuleID string
	Error  error
}

// PartialConfig is a config together with the entries that could not be used.
type PartialConfig struct {
	Config
	ValidationWarnings []ValidationWarning
}

type rawConfig struct {
	Rules      yaml.Node     `yaml:"rules"`
	Namespaces []string      `yaml:"namespaces"`
	Breaking   Breaking      `yaml:"breaking"`
	Scope      Scope         `yaml:"scope"`
	Logging    LoggingConfig `yaml:"logging"`
}

// LoadPartialFile reads a config file, keeping whatever rule entries are usable.
func LoadPartialFile(fsys afero.Fs, path string) (*PartialConfig, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadPartial(data)
}

// LoadPartial parses config bytes. Only a document that is not YAML at all is an error.
func LoadPartial(data []byte) (*PartialConfig, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	partial := &PartialConfig{
		Config: Config{
			Namespaces: raw.Namespaces,
			Breaking:   raw.Breaking,
			Scope:      raw.Scope,
			Logging:    raw.Logging,
		},
	}

	if raw.Rules.Kind != 0 && raw.Rules.Kind != yaml.MappingNode {
		partial.ValidationWarnings = append(partial.ValidationWarnings, ValidationWarning{
			RuleID: "rules",
			Error:  fmt.Errorf("%w: rules must be a mapping", ErrInvalidRule),
		})
		return partial, nil
	}

	seen := make(map[string]int)
	for i := 0; i+1 < len(raw.Rules.Content); i += 2 {
		id := raw.Rules.Content[i].Value
		entry, skip, err := parseEntry(id, raw.Rules.Content[i+1])
		if err != nil {
			partial.ValidationWarnings = append(partial.ValidationWarnings, ValidationWarning{RuleID: id, Error: err})
			continue
		}
		if skip {
			continue
		}
		if at, dup := seen[id]; dup {
			partial.Rules[at] = entry
			continue
		}
		seen[id] = len(partial.Rules)
		partial.Rules = append(partial.Rules, entry)
	}

	partial.applyNamespaceDefaults()

	return partial, nil
}

// parseEntry decodes one rule. skip is set for disabled or empty entries.
func parseEntry(id string, node *yaml.Node) (entry RuleEntry, skip bool, err error) {
	part, kind, err := rules.ParseID(id)
	if err != nil {
		return RuleEntry{}, false, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	if node.Kind == yaml.ScalarNode && (node.Tag == "!!null" || node.Value == "") {
		return RuleEntry{}, true, nil
	}

	var values []any
	if err := node.Decode(&values); err != nil {
		return RuleEntry{}, false, fmt.Errorf("%w: expected [severity, condition, value?]", ErrInvalidRule)
	}
	if len(values) == 0 || len(values) > 3 {
		return RuleEntry{}, false, fmt.Errorf("%w: expected [severity, condition, value?]", ErrInvalidRule)
	}

	level, ok := values[0].(int)
	if !ok {
		return RuleEntry{}, false, fmt.Errorf("%w: severity must be 0, 1 or 2", ErrInvalidRule)
	}
	severity, err := rules.ParseSeverity(level)
	if err != nil {
		return RuleEntry{}, false, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	if severity == rules.Disabled {
		return RuleEntry{}, true, nil
	}

	condition := rules.Always
	if len(values) > 1 {
		s, ok := values[1].(string)
		if !ok {
			return RuleEntry{}, false, fmt.Errorf("%w: condition must be always or never", ErrInvalidRule)
		}
		if condition, err = rules.ParseCondition(s); err != nil {
			return RuleEntry{}, false, fmt.Errorf("%w: %w", ErrInvalidRule, err)
		}
	}

	var value any
	if len(values) > 2 {
		value = values[2]
	}

	return RuleEntry{
		ID:        rules.ID(part, kind),
		Part:      part,
		Kind:      kind,
		Severity:  severity,
		Condition: condition,
		Value:     value,
	}, false, nil
}

// applyNamespaceDefaults lets a namespace-alignment rule without a value inherit the
// top-level namespace patterns.
func (c *Config) applyNamespaceDefaults() {
	if len(c.Namespaces) == 0 {
		return
	}
	for i := range c.Rules {
		r := &c.Rules[i]
		if r.Kind == rules.KindNamespaceAlignment && r.Value == nil {
			r.Value = append([]string(nil), c.Namespaces...)
		}
	}
}

// ExpandNamespaces resolves the namespace patterns against the repository tree and fills
// a namespace-enum rule that has no explicit value. It returns the expanded names.
func (c *Config) ExpandNamespaces(fsys fs.FS) ([]string, error) {
	if len(c.Namespaces) == 0 {
		return nil, nil
	}

	names, err := namespace.Expand(fsys, c.Namespaces)
	if err != nil {
		return nil, fmt.Errorf("failed to expand namespaces: %w", err)
	}

	for i := range c.Rules {
		r := &c.Rules[i]
		if r.Part == rules.PartNamespace && r.Kind == rules.KindEnum && r.Value == nil && len(names) > 0 {
			r.Value = append([]string(nil), names...)
		}
	}

	return names, nil
}

// BreakingEmoji returns the configured breaking-change emoji shortcode.
func (c *Config) BreakingEmoji() string {
	if c.Breaking.Emoji == "" {
		return DefaultBreakingEmoji
	}
	return c.Breaking.Emoji
}

// ScopeDelimiter returns the delimiter used when rendering multiple scopes.
func (c *Config) ScopeDelimiter() string {
	if strings.TrimSpace(c.Scope.Delimiter) == "" {
		return DefaultScopeDelimiter
	}
	return c.Scope.Delimiter
}

// Rule returns the entry with the given id.
func (c *Config) Rule(id string) (RuleEntry, bool) {
	for _, r := range c.Rules {
		if r.ID == id {
			return r, true
		}
	}
	return RuleEntry{}, false
}
