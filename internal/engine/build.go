package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/logging"
	"github.com/wannabewayno/commitional/internal/rules"
)

type options struct {
	env rules.Env
}

// Option customises engine construction.
type Option func(*options)

// WithGitContext supplies the changed-files provider used by namespace alignment.
func WithGitContext(p rules.GitContextProvider) Option {
	return func(o *options) { o.env.Git = p }
}

// Skipped is a configured rule that could not be built.
type Skipped struct {
	ID  string
	Err error
}

// Build constructs rules from config entries and reports the ones it had to skip.
func Build(entries []config.RuleEntry, opts ...Option) (*Engine, []Skipped) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		built   []rules.Rule
		skipped []Skipped
	)
	for _, entry := range entries {
		if entry.Severity == rules.Disabled {
			continue
		}
		r, err := rules.New(entry.Kind, rules.Settings{
			Part:      entry.Part,
			Severity:  entry.Severity,
			Condition: entry.Condition,
		}, entry.Value, o.env)
		if err != nil {
			skipped = append(skipped, Skipped{ID: entry.ID, Err: err})
			continue
		}
		built = append(built, r)
	}

	return New(built...), skipped
}

// FromRules builds an engine, silently dropping entries it cannot build.
// Dropped entries are only logged at debug level.
func FromRules(ctx context.Context, entries []config.RuleEntry, opts ...Option) *Engine {
	e, skipped := Build(entries, opts...)
	for _, s := range skipped {
		logging.Get(ctx).Debug().Str("rule", s.ID).Err(s.Err).Msg("rule skipped")
	}
	return e
}

// FromConfig loads the config file at path, expands namespace patterns relative to the
// file's directory and builds the engine.
func FromConfig(ctx context.Context, fs afero.Fs, path string, opts ...Option) (*Engine, *config.Config, error) {
	logging.Get(ctx).Debug().Str("config_path", path).Msg("loading config file")

	partial, err := config.LoadPartialFile(fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	for i := range partial.ValidationWarnings {
		warning := &partial.ValidationWarnings[i]
		logging.Get(ctx).Warn().
			Str("rule", warning.RuleID).
			Err(warning.Error).
			Msg("invalid rule skipped")
	}

	cfg := &partial.Config
	root := afero.NewBasePathFs(fs, filepath.Dir(path))
	if _, err := cfg.ExpandNamespaces(afero.NewIOFS(root)); err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("namespace expansion failed")
	}

	return FromRules(ctx, cfg.Rules, opts...), cfg, nil
}
