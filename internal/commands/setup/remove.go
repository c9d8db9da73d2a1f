package setup

import (
	"context"
	"fmt"
	"io"

	"github.com/thomas-vilte/commit-template/internal/commands/completion_helper"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
	"github.com/thomas-vilte/commit-template/internal/prompt"
	"github.com/thomas-vilte/commit-template/internal/scaffold"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/urfave/cli/v3"
)

type RemoveCommandFactory struct {
	dir string
	in  io.Reader
	out io.Writer
}

func NewRemoveCommandFactory(dir string, in io.Reader, out io.Writer) *RemoveCommandFactory {
	return &RemoveCommandFactory{dir: dir, in: in, out: out}
}

func (f *RemoveCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: t.GetMessage("remove.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   t.GetMessage("remove.flag_yes", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t),
	}
}

func (f *RemoveCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		flags.Apply(ctx, command, t)

		p, err := locateProject(ctx, f.dir)
		if err != nil {
			return err
		}

		planned := scaffold.Installed(p.root, p.hooksDir)
		logger.Info(ctx, "executing remove command", "root", p.root, "files", len(planned))
		if len(planned) == 0 {
			ui.PrintInfo(f.out, t.GetMessage("remove.empty", 0, nil))
			return nil
		}

		if !command.Bool("yes") {
			for _, path := range planned {
				_, _ = fmt.Fprintf(f.out, "  %s\n", ui.Dim.Sprint(path))
			}

			answers, err := prompt.NewTerminal(f.in, f.out, t).Ask(ctx, []models.Question{{
				Kind:    models.KindConfirm,
				Name:    "remove",
				Message: t.GetMessage("remove.confirm", 0, nil),
				Default: false,
			}})
			if err != nil {
				return err
			}
			if !answers.Bool("remove") {
				ui.PrintInfo(f.out, t.GetMessage("remove.aborted", 0, nil))
				return nil
			}
		}

		removed, err := scaffold.Remove(ctx, p.root, p.hooksDir)
		for _, path := range removed {
			ui.PrintSuccess(f.out, t.GetMessage("remove.removed", 0, map[string]interface{}{"Path": path}))
		}
		return err
	}
}
