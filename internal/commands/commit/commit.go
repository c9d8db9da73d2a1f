package commit

import (
	"context"
	"io"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/commands/completion_helper"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/config"
	"github.com/thomas-vilte/commit-template/internal/git"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
	"github.com/thomas-vilte/commit-template/internal/prompt"
	"github.com/thomas-vilte/commit-template/internal/questions"
	"github.com/thomas-vilte/commit-template/internal/services"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/urfave/cli/v3"
)

type CommitCommandFactory struct {
	dir string
	in  io.Reader
	out io.Writer
}

// NewCommitCommandFactory builds the commit command for the repository
// containing dir, asking questions on in and printing to out.
func NewCommitCommandFactory(dir string, in io.Reader, out io.Writer) *CommitCommandFactory {
	return &CommitCommandFactory{dir: dir, in: in, out: out}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit.usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.Action(t),
	}
}

// Action runs one commit session. It is also the action of the root command.
func (f *CommitCommandFactory) Action(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		flags.Apply(ctx, command, t)

		gitService := git.NewGitService(f.dir)
		resolve := func(ctx context.Context) *models.EffectiveConfig {
			root, err := gitService.GetRepoRoot(ctx)
			if err != nil {
				logger.Warn(ctx, "repository root not found, using working directory", "error", err)
				root = f.dir
			}
			return config.Resolve(ctx, root)
		}

		service := services.NewCommitService(
			gitService,
			prompt.NewTerminal(f.in, f.out, t),
			questions.NewBuilder(t),
			resolve,
			t,
		)

		printer := newProgressPrinter(f.out, t)
		outcome, err := service.Run(ctx, printer.handle)
		printer.stop()
		if err != nil {
			logger.Error(ctx, "commit session failed", err)
			return err
		}

		logger.Info(ctx, "commit session finished", "outcome", string(outcome))
		return nil
	}
}

// progressPrinter renders the events of a commit session.
type progressPrinter struct {
	out     io.Writer
	t       *i18n.Translations
	spinner *ui.SmartSpinner
}

func newProgressPrinter(out io.Writer, t *i18n.Translations) *progressPrinter {
	return &progressPrinter{out: out, t: t}
}

func (p *progressPrinter) handle(event models.ProgressEvent) {
	switch event.Type {
	case models.ProgressBranchDetected:
		ui.PrintBranch(p.out, p.t.GetMessage("commit.branch", 0, map[string]interface{}{
			"Branch": event.Branch,
		}))
	case models.ProgressStagedFiles:
		ui.PrintStagedFiles(p.out, p.t.GetMessage("commit.staged_files", 0, nil), event.Files)
	case models.ProgressNothingStaged:
		ui.PrintWarning(p.out, event.Message)
	case models.ProgressMessageReady:
		ui.PrintMessageBox(p.out, p.t.GetMessage("commit.preview_title", 0, nil), event.Message)
	case models.ProgressCommitting:
		p.spinner = ui.NewSmartSpinner(p.out, p.t.GetMessage("commit.committing", 0, nil))
		p.spinner.Start()
	case models.ProgressConfigResolved:
		if event.Message != "" {
			ui.PrintKeyValue(p.out, p.t.GetMessage("commit.config_source", 0, nil), event.Message)
		}
	case models.ProgressCommitted:
		subject, _, _ := strings.Cut(event.Message, "\n")
		msg := p.t.GetMessage("commit.created", 0, map[string]interface{}{
			"Message": subject,
		})
		if p.spinner == nil {
			ui.PrintSuccess(p.out, msg)
			return
		}
		p.spinner.Success(msg)
		p.spinner = nil
	case models.ProgressCancelled:
		ui.PrintWarning(p.out, p.t.GetMessage("commit.cancelled", 0, nil))
	}
}

// stop ends a spinner left running by a failed commit.
func (p *progressPrinter) stop() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
