package config

import (
	"fmt"

	"github.com/wannabewayno/commitional/internal/rules"
	"gopkg.in/yaml.v3"
)

var defaultTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test",
}

func entry(id string, severity rules.Severity, condition rules.Condition, value any) RuleEntry {
	part, kind, err := rules.ParseID(id)
	if err != nil {
		panic(fmt.Sprintf("bad default rule %q: %v", id, err))
	}
	return RuleEntry{ID: id, Part: part, Kind: kind, Severity: severity, Condition: condition, Value: value}
}

// DefaultConfig returns the conventional-commit rule set used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Rules: []RuleEntry{
			entry("type-empty", rules.Error, rules.Never, nil),
			entry("type-case", rules.Error, rules.Always, []string{"lower-case"}),
			entry("type-enum", rules.Error, rules.Always, append([]string(nil), defaultTypes...)),
			entry("scope-case", rules.Error, rules.Always, []string{"lower-case"}),
			entry("subject-empty", rules.Error, rules.Never, nil),
			entry("subject-trim", rules.Error, rules.Always, nil),
			entry("subject-full-stop", rules.Error, rules.Never, "."),
			entry("subject-case", rules.Error, rules.Never,
				[]string{"sentence-case", "start-case", "pascal-case", "upper-case"}),
			entry("header-max-length", rules.Error, rules.Always, 100),
			entry("body-max-line-length", rules.Error, rules.Always, 100),
			entry("footer-max-line-length", rules.Error, rules.Always, 100),
		},
		Breaking: Breaking{Emoji: DefaultBreakingEmoji},
		Scope:    Scope{Delimiter: DefaultScopeDelimiter},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes.
func DefaultConfigYAML() ([]byte, error) {
	data, err := DefaultConfig().MarshalYAMLBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}

// MarshalYAMLBytes renders the config with rules in declaration order, each entry on one line.
func (c *Config) MarshalYAMLBytes() ([]byte, error) {
	ruleMap := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range c.Rules {
		tuple := []any{int(r.Severity), string(r.Condition)}
		if r.Value != nil {
			tuple = append(tuple, r.Value)
		}

		var value yaml.Node
		if err := value.Encode(tuple); err != nil {
			return nil, fmt.Errorf("failed to encode rule %q: %w", r.ID, err)
		}
		value.Style = yaml.FlowStyle

		ruleMap.Content = append(ruleMap.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.ID},
			&value,
		)
	}

	var rest yaml.Node
	if err := rest.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "rules"}, ruleMap)
	root.Content = append(root.Content, rest.Content...)

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
