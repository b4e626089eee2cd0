package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/engine"
	"github.com/wannabewayno/commitional/internal/rules"
)

// ValidateConfig checks every rule in the config file and reports the ones that would
// be skipped. It returns an error only when the file cannot be read or is not YAML.
func (a *App) ValidateConfig() (string, bool, error) {
	if a.configPath == "" {
		return "No config file found, using built-in rules", true, nil
	}

	partialCfg, err := config.LoadPartialFile(a.fs, a.configPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to load config from %s: %w", a.configPath, err)
	}

	root := afero.NewIOFS(afero.NewBasePathFs(a.fs, filepath.Dir(a.configPath)))
	if _, err := partialCfg.ExpandNamespaces(root); err != nil {
		return "", false, fmt.Errorf("invalid namespaces in %s: %w", a.configPath, err)
	}

	// Values are only checked when a rule is built; alignment is never evaluated here.
	noGit := rules.GitContextFunc(func() (rules.GitContext, error) { return rules.GitContext{}, nil })
	_, skipped := engine.Build(partialCfg.Rules, engine.WithGitContext(noGit))

	var invalid []string
	for i := range partialCfg.ValidationWarnings {
		w := &partialCfg.ValidationWarnings[i]
		invalid = append(invalid, fmt.Sprintf("  %s: %v", w.RuleID, w.Error))
	}
	for _, s := range skipped {
		invalid = append(invalid, fmt.Sprintf("  %s: %v", s.ID, s.Err))
	}

	validCount := len(partialCfg.Rules) - len(skipped)
	if len(invalid) == 0 {
		return fmt.Sprintf("Configuration is valid: %d rules", validCount), true, nil
	}

	var result strings.Builder
	_, _ = fmt.Fprintf(&result, "Configuration partially valid: %d valid rules, %d invalid rules\n\nInvalid rules:\n",
		validCount, len(invalid))
	_, _ = result.WriteString(strings.Join(invalid, "\n"))
	return result.String(), false, nil
}
