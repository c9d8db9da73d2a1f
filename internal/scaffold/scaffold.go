// Package scaffold adds the commit template to a project and removes it.
package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/config"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/formatter"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/regex"
)

const (
	ConfigFileName = "commit.config.toml"
	HookName       = "commit-msg"

	// HookMarker identifies hooks written by Init. Remove only deletes
	// hooks carrying it.
	HookMarker = "# Installed by ct (commit-template)"
)

// Hook modes.
const (
	// HookFormat checks the default "type/[branch] | #id | subject" shape.
	HookFormat = "format"
	// HookLint delegates to `ct lint`, which checks "type(scope): subject".
	HookLint = "lint"
)

type (
	InitOptions struct {
		Force bool
		Hooks bool
		// HookMode is HookFormat or HookLint. Empty picks the mode that
		// accepts the messages of the project configuration.
		HookMode string
	}

	InitResult struct {
		ConfigPath    string
		ConfigWritten bool
		HookPath      string
		HookMode      string
		BackupPath    string
	}
)

// Init writes the example configuration into root and, when asked, the
// commit-msg hook into hooksDir. An existing configuration is kept unless
// Force is set. A foreign hook is an error unless Force is set, in which
// case it is moved aside to <hook>.backup. The hook checks the types of the
// resulting configuration, and a hook mode that would reject the messages
// of its preset is an error.
func Init(ctx context.Context, root, hooksDir string, opts InitOptions) (*InitResult, error) {
	result := &InitResult{}

	if existing, ok := config.Find(root); ok && !opts.Force {
		result.ConfigPath = existing
		logger.Info(ctx, "config kept", "path", existing)
	} else {
		path := filepath.Join(root, ConfigFileName)
		if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
			return nil, errors.ErrConfigSave.WithError(err).WithContext("path", path)
		}
		result.ConfigPath = path
		result.ConfigWritten = true
		logger.Info(ctx, "config written", "path", path)
	}

	if !opts.Hooks {
		return result, nil
	}

	mode, err := resolveHookMode(result.ConfigPath, opts.HookMode)
	if err != nil {
		return nil, err
	}

	cfg := config.Resolve(ctx, root)
	types := make([]string, 0, len(cfg.Types))
	for _, t := range cfg.Types {
		types = append(types, t.Value)
	}

	content, err := Hook(mode, types)
	if err != nil {
		return nil, errors.ErrHookWrite.WithError(err)
	}

	hookPath, backup, err := installHook(hooksDir, content, opts.Force)
	if err != nil {
		return nil, err
	}
	result.HookPath = hookPath
	result.HookMode = mode
	result.BackupPath = backup
	logger.Info(ctx, "hook installed", "path", hookPath, "mode", mode)

	return result, nil
}

// resolveHookMode matches the requested mode against the preset of the
// config at path. A custom message_format is checked by neither mode, so
// any mode is accepted for it and the default shape is picked.
func resolveHookMode(path, requested string) (string, error) {
	matching := HookFormat
	custom := false
	if user, err := config.Load(path); err == nil {
		switch {
		case user.MessageFormat != "":
			custom = true
		case user.MessagePreset == formatter.PresetConventional:
			matching = HookLint
		}
	}

	switch {
	case requested == "":
		return matching, nil
	case requested != HookFormat && requested != HookLint:
		return "", errors.ErrHookWrite.WithError(fmt.Errorf("unknown hook mode %q", requested))
	case custom || requested == matching:
		return requested, nil
	default:
		return "", errors.ErrHookWrite.
			WithError(fmt.Errorf("hook mode %q rejects the messages of %s", requested, filepath.Base(path))).
			WithSuggestion("Use --hook-mode " + matching + " or drop --hook-mode")
	}
}

func installHook(hooksDir, content string, force bool) (path, backup string, err error) {
	path = filepath.Join(hooksDir, HookName)
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", "", errors.ErrHookWrite.WithError(err).WithContext("path", path)
	}

	if existing, readErr := os.ReadFile(path); readErr == nil && !bytes.Contains(existing, []byte(HookMarker)) {
		if !force {
			return "", "", errors.ErrHookWrite.
				WithError(fmt.Errorf("%s already exists", path)).
				WithSuggestion("Run again with --force to move the existing hook to " + HookName + ".backup")
		}
		backup = path + ".backup"
		if err := os.Rename(path, backup); err != nil {
			return "", "", errors.ErrHookWrite.WithError(err).WithContext("path", path)
		}
	}

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return "", "", errors.ErrHookWrite.WithError(err).WithContext("path", path)
	}
	return path, backup, nil
}

// Hook returns the commit-msg script for mode. The format script accepts
// the given type values, or the default ones when types is empty.
func Hook(mode string, types []string) (string, error) {
	switch mode {
	case "", HookFormat:
		pattern := strings.ReplaceAll(regex.FormatPattern(types), "'", `'\''`)
		return formatHookHead + "commit_regex='" + pattern + "'\n" + formatHookBody, nil
	case HookLint:
		return lintHook, nil
	default:
		return "", fmt.Errorf("unknown hook mode %q", mode)
	}
}

const formatHookHead = `#!/bin/sh
` + HookMarker + `
# Checks the message against: type/[branch] | #task | subject

`

const formatHookBody = `
if ! grep -qE "$commit_regex" "$1"; then
  echo "Invalid commit message format."
  echo "Use: {type}/[{branch}] | #{task id} | {subject}"
  echo "Example: feat/[auth] | #123 | add user login"
  exit 1
fi
`

const lintHook = `#!/bin/sh
` + HookMarker + `
# Checks the message with: ct lint

exec ct lint "$1"
`

// Installed lists the files Remove would delete.
func Installed(root, hooksDir string) []string {
	paths := make([]string, 0, len(config.FileNames)+1)
	for _, name := range config.FileNames {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			paths = append(paths, path)
		}
	}

	if hooksDir != "" {
		hook := filepath.Join(hooksDir, HookName)
		if content, err := os.ReadFile(hook); err == nil && bytes.Contains(content, []byte(HookMarker)) {
			paths = append(paths, hook)
		}
	}

	return paths
}

// Remove deletes the config files of root and our commit-msg hook. A hook
// backed up by Init is put back.
func Remove(ctx context.Context, root, hooksDir string) ([]string, error) {
	removed := make([]string, 0)

	for _, path := range Installed(root, hooksDir) {
		if err := os.Remove(path); err != nil {
			return removed, errors.ErrRemove.WithError(err).WithContext("path", path)
		}
		removed = append(removed, path)
		logger.Info(ctx, "removed", "path", path)

		if filepath.Base(path) == HookName {
			backup := path + ".backup"
			if _, err := os.Stat(backup); err == nil {
				if err := os.Rename(backup, path); err != nil {
					return removed, errors.ErrRemove.WithError(err).WithContext("path", backup)
				}
				logger.Info(ctx, "hook restored", "path", path)
			}
		}
	}

	return removed, nil
}
