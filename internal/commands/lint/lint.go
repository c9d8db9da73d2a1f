package lint

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/commands/completion_helper"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/thomas-vilte/commit-template/internal/validation"
	"github.com/urfave/cli/v3"
)

// stdinArg selects standard input as the message source.
const stdinArg = "-"

type LintCommandFactory struct {
	in  io.Reader
	out io.Writer
}

func NewLintCommandFactory(in io.Reader, out io.Writer) *LintCommandFactory {
	return &LintCommandFactory{in: in, out: out}
}

func (f *LintCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "lint",
		Usage:         t.GetMessage("lint.usage", 0, nil),
		ArgsUsage:     "[FILE|-]",
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t),
	}
}

func (f *LintCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		flags.Apply(ctx, command, t)

		source := command.Args().First()
		if source == "" {
			source = stdinArg
		}

		message, err := f.read(source)
		if err != nil {
			return err
		}
		message = validation.StripComments(message)

		violations := validation.Validate(message)
		logger.Info(ctx, "commit message checked", "source", source, "violations", len(violations))
		if len(violations) == 0 {
			ui.PrintSuccess(f.out, t.GetMessage("lint.valid", 0, nil))
			return nil
		}

		ui.PrintError(f.out, t.GetMessage("lint.invalid", 0, nil))
		for _, v := range violations {
			_, _ = fmt.Fprintf(f.out, "  - %s\n", v)
		}
		return errors.ErrLintViolations.
			WithError(fmt.Errorf("%s", strings.Join(violations, "; "))).
			WithContext("source", source)
	}
}

func (f *LintCommandFactory) read(source string) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == stdinArg {
		data, err = io.ReadAll(f.in)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", errors.ErrLintRead.WithError(err).WithContext("source", source)
	}
	return string(data), nil
}
