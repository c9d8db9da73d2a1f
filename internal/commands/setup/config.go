package setup

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/commands/completion_helper"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/config"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
	"github.com/thomas-vilte/commit-template/internal/prompt"
	"github.com/thomas-vilte/commit-template/internal/scaffold"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/urfave/cli/v3"
)

// clearValue answers a text question with "none" when it has a default.
const clearValue = "-"

const (
	presetDefault      = "default"
	presetConventional = "conventional"
)

type ConfigCommandFactory struct {
	dir string
	in  io.Reader
	out io.Writer
}

func NewConfigCommandFactory(dir string, in io.Reader, out io.Writer) *ConfigCommandFactory {
	return &ConfigCommandFactory{dir: dir, in: in, out: out}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "config",
		Usage:         t.GetMessage("config.usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t),
	}
}

func (f *ConfigCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		flags.Apply(ctx, command, t)

		p, err := locateProject(ctx, f.dir)
		if err != nil {
			return err
		}

		path, found := config.Find(p.root)
		user := &config.UserConfig{}
		if found {
			if user, err = config.Load(path); err != nil {
				return err
			}
		} else {
			path = filepath.Join(p.root, scaffold.ConfigFileName)
		}
		logger.Info(ctx, "executing config command", "path", path, "existing", found)

		answers, err := prompt.NewTerminal(f.in, f.out, t).Ask(ctx, configQuestions(user, t))
		if err != nil {
			return err
		}

		user.Scopes = splitList(answers.String("scopes"))
		user.IssuePrefix = answers.String("issuePrefix")
		user.MessagePreset = answers.String("preset")

		if user.MessageFormat != "" {
			ui.PrintWarning(f.out, t.GetMessage("config.format_overrides", 0, nil))
		}

		if err := config.Save(ctx, path, user); err != nil {
			return err
		}

		ui.PrintSuccess(f.out, t.GetMessage("config.saved", 0, map[string]interface{}{"Path": path}))
		return nil
	}
}

func configQuestions(user *config.UserConfig, t *i18n.Translations) []models.Question {
	preset := user.MessagePreset
	if preset == "" {
		preset = presetDefault
	}

	return []models.Question{
		{
			Kind:    models.KindText,
			Name:    "scopes",
			Message: t.GetMessage("config.scopes", 0, nil),
			Default: defaultText(strings.Join(user.Scopes, ", ")),
			Filter:  clearable,
		},
		{
			Kind:    models.KindText,
			Name:    "issuePrefix",
			Message: t.GetMessage("config.issue_prefix", 0, nil),
			Default: defaultText(user.IssuePrefix),
			Filter:  clearable,
			Validate: validatePrefix,
		},
		{
			Kind:    models.KindChoice,
			Name:    "preset",
			Message: t.GetMessage("config.preset", 0, nil),
			Default: preset,
			Choices: []models.Choice{
				{Label: t.GetMessage("config.preset_default", 0, nil), Value: presetDefault},
				{Label: t.GetMessage("config.preset_conventional", 0, nil), Value: presetConventional},
			},
		},
	}
}

// validatePrefix checks the prefix with the config file rules.
func validatePrefix(input string) error {
	return config.Validate(&config.UserConfig{IssuePrefix: strings.TrimSpace(input)})
}

// defaultText returns nil for an empty default so that no default is shown.
func defaultText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func clearable(input string) any {
	value := strings.TrimSpace(input)
	if value == "" || value == clearValue {
		return nil
	}
	return value
}

func splitList(s string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
