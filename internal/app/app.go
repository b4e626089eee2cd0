// Package app wires configuration, the rules engine and commit messages into the
// operations behind each command.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/spf13/afero"
	"github.com/wannabewayno/commitional/internal/commit"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/engine"
	"github.com/wannabewayno/commitional/internal/gitctx"
	"github.com/wannabewayno/commitional/internal/logging"
	"github.com/wannabewayno/commitional/internal/rules"
)

var ErrConfigExists = errors.New("config file already exists")

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	Fs afero.Fs
	// ConfigPath is the rules file; empty means the built-in conventional rules.
	ConfigPath  string
	ProjectRoot string
	// Git supplies changed files. When nil the repository at ProjectRoot is opened on
	// first use.
	Git rules.GitContextProvider
}

// App runs commitional operations for one project.
type App struct {
	fs          afero.Fs
	configPath  string
	projectRoot string

	git     rules.GitContextProvider
	gitOnce sync.Once
}

// NewAppWithOptions creates a new App with the given options
func NewAppWithOptions(opts AppOptions) *App {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}
	return &App{fs: fs, configPath: opts.ConfigPath, projectRoot: root, git: opts.Git}
}

// ConfigPath returns the config file in use, empty for the built-in rules.
func (a *App) ConfigPath() string { return a.configPath }

func (a *App) gitProvider(ctx context.Context) rules.GitContextProvider {
	a.gitOnce.Do(func() {
		if a.git != nil {
			return
		}
		p, err := gitctx.Open(ctx, a.projectRoot)
		if err != nil {
			logging.Get(ctx).Debug().Err(err).Msg("no git repository, namespace alignment disabled")
			return
		}
		a.git = p
	})
	return a.git
}

// Load builds the engine from the config file, or from the built-in rules when no
// file is configured.
func (a *App) Load(ctx context.Context) (*engine.Engine, *config.Config, error) {
	var opts []engine.Option
	if git := a.gitProvider(ctx); git != nil {
		opts = append(opts, engine.WithGitContext(git))
	}

	if a.configPath != "" {
		e, cfg, err := engine.FromConfig(ctx, a.fs, a.configPath, opts...)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck // already names the config path
		}
		return e, cfg, nil
	}

	logging.Get(ctx).Debug().Msg("no config file, using built-in rules")
	cfg := config.DefaultConfig()
	root := afero.NewIOFS(afero.NewBasePathFs(a.fs, a.projectRoot))
	if _, err := cfg.ExpandNamespaces(root); err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("namespace expansion failed")
	}
	return engine.FromRules(ctx, cfg.Rules, opts...), cfg, nil
}

func messageOptions(cfg *config.Config) []commit.Option {
	return []commit.Option{
		commit.WithScopeDelimiter(cfg.ScopeDelimiter()),
		commit.WithBreakingEmoji(cfg.BreakingEmoji()),
	}
}

// Input is one commit message to check.
type Input struct {
	Name string
	Raw  string
}

// Report is the outcome of checking one message. Err is set when the message could not
// be parsed at all.
type Report struct {
	Name    string
	Message *commit.Message
	Valid   bool
	Results []commit.PartResult
	Err     error
}

// Lint validates messages without changing them.
func (a *App) Lint(ctx context.Context, inputs []Input) ([]Report, error) {
	e, cfg, err := a.Load(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(inputs))
	var (
		msgs  []*commit.Message
		index []int
	)
	for i, in := range inputs {
		reports[i].Name = in.Name
		m, err := commit.Parse(commit.StripComments(in.Raw, ""), messageOptions(cfg)...)
		if err != nil {
			reports[i].Err = err
			continue
		}
		msgs = append(msgs, m)
		index = append(index, i)
	}

	outcomes, err := commit.ProcessAll(ctx, e, msgs, runtime.GOMAXPROCS(0), false)
	if err != nil {
		return nil, fmt.Errorf("failed to lint messages: %w", err)
	}
	for j, o := range outcomes {
		r := &reports[index[j]]
		r.Message, r.Valid, r.Results = o.Message, o.Valid, o.Results
	}

	return reports, nil
}

// Fix repairs a message as far as the rules allow.
func (a *App) Fix(ctx context.Context, in Input) (Report, error) {
	e, cfg, err := a.Load(ctx)
	if err != nil {
		return Report{}, err
	}

	m, err := commit.Parse(commit.StripComments(in.Raw, ""), messageOptions(cfg)...)
	if err != nil {
		return Report{Name: in.Name, Err: err}, nil
	}

	fixed, valid, results := m.Process(ctx, e)
	logging.Get(ctx).Debug().Str("name", in.Name).Bool("valid", valid).Msg("message fixed")
	return Report{Name: in.Name, Message: fixed, Valid: valid, Results: results}, nil
}

// ToggleBreaking flips the breaking state of a message and returns the new text.
func (a *App) ToggleBreaking(ctx context.Context, raw, reason string) (string, bool, error) {
	_, cfg, err := a.Load(ctx)
	if err != nil {
		return "", false, err
	}

	m, err := commit.Parse(commit.StripComments(raw, ""), messageOptions(cfg)...)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse message: %w", err)
	}
	m.Breaking(reason)
	return m.String(), m.IsBreaking(), nil
}

// Describe documents the active rules.
func (a *App) Describe(ctx context.Context) (string, error) {
	e, _, err := a.Load(ctx)
	if err != nil {
		return "", err
	}
	return e.Describe(), nil
}

// Template renders the shape of a valid message.
func (a *App) Template(ctx context.Context) (string, error) {
	e, _, err := a.Load(ctx)
	if err != nil {
		return "", err
	}
	return e.Template(), nil
}

// Choices lists the values each enum-bound part accepts.
func (a *App) Choices(ctx context.Context) ([]engine.Choice, error) {
	e, _, err := a.Load(ctx)
	if err != nil {
		return nil, err
	}
	return e.Choices(), nil
}

// InitConfig writes the built-in rules to path.
func (a *App) InitConfig(path string, force bool) error {
	if !force {
		exists, err := afero.Exists(a.fs, path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}
	if err := afero.WriteFile(a.fs, path, data, 0o644); err != nil { //nolint:gosec // config is meant to be shared
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
