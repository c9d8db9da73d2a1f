package setup

import (
	"context"
	"io"

	"github.com/thomas-vilte/commit-template/internal/commands/completion_helper"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/scaffold"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/urfave/cli/v3"
)

type InitCommandFactory struct {
	dir string
	out io.Writer
}

func NewInitCommandFactory(dir string, out io.Writer) *InitCommandFactory {
	return &InitCommandFactory{dir: dir, out: out}
}

func (f *InitCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "init",
		Usage:         t.GetMessage("init.usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t),
	}
}

func (f *InitCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "hooks",
			Usage: t.GetMessage("init.flag_hooks", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("init.flag_force", 0, nil),
		},
		&cli.StringFlag{
			Name:  "hook-mode",
			Usage: t.GetMessage("init.flag_hook_mode", 0, nil),
		},
	}
}

func (f *InitCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		flags.Apply(ctx, command, t)

		opts := scaffold.InitOptions{
			Force:    command.Bool("force"),
			Hooks:    command.Bool("hooks"),
			HookMode: command.String("hook-mode"),
		}
		logger.Info(ctx, "executing init command", "force", opts.Force, "hooks", opts.Hooks, "hook_mode", opts.HookMode)

		p, err := locateProject(ctx, f.dir)
		if err != nil {
			return err
		}
		if opts.Hooks && !p.inRepository() {
			return errors.ErrHookWrite.WithError(errors.ErrNotInGitRepo).
				WithSuggestion("Run git init first or drop --hooks")
		}

		result, err := scaffold.Init(ctx, p.root, p.hooksDir, opts)
		if err != nil {
			return err
		}

		data := map[string]interface{}{"Path": result.ConfigPath}
		if result.ConfigWritten {
			ui.PrintSuccess(f.out, t.GetMessage("init.config_created", 0, data))
		} else {
			ui.PrintInfo(f.out, t.GetMessage("init.config_kept", 0, data))
		}

		if result.BackupPath != "" {
			ui.PrintWarning(f.out, t.GetMessage("init.hook_backup", 0, map[string]interface{}{"Path": result.BackupPath}))
		}
		if result.HookPath != "" {
			ui.PrintSuccess(f.out, t.GetMessage("init.hook_installed", 0, map[string]interface{}{"Path": result.HookPath}))
		}

		ui.PrintInfo(f.out, t.GetMessage("init.ready", 0, nil))
		return nil
	}
}
