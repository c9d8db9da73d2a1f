package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/formatter"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
)

// ConfirmQuestionName is the answer key of the final confirmation.
const ConfirmQuestionName = "confirm"

type (
	VersionControl interface {
		IsRepository(ctx context.Context) (bool, error)
		GetCurrentBranch(ctx context.Context) (string, error)
		GetFileStatuses(ctx context.Context) ([]models.FileStatus, error)
		CreateCommit(ctx context.Context, message string) error
	}

	Prompter interface {
		Ask(ctx context.Context, questions []models.Question) (models.Answers, error)
	}

	QuestionBuilder interface {
		Build(cfg *models.EffectiveConfig, branch string) []models.Question
	}

	// ConfigResolver returns the configuration of the current project. It
	// never fails; broken configuration resolves to the defaults.
	ConfigResolver func(ctx context.Context) *models.EffectiveConfig
)

// CommitService runs one interactive commit session.
type CommitService struct {
	git       VersionControl
	prompter  Prompter
	questions QuestionBuilder
	resolve   ConfigResolver
	trans     *i18n.Translations
}

func NewCommitService(git VersionControl, prompter Prompter, questions QuestionBuilder, resolve ConfigResolver, trans *i18n.Translations) *CommitService {
	return &CommitService{
		git:       git,
		prompter:  prompter,
		questions: questions,
		resolve:   resolve,
		trans:     trans,
	}
}

// Run checks the repository, asks the questions, formats the message and
// commits it once the user confirms. Declining and having nothing staged
// are outcomes, not errors.
func (s *CommitService) Run(ctx context.Context, progress func(models.ProgressEvent)) (models.SessionOutcome, error) {
	ctx = logger.With(ctx, "session_id", uuid.NewString())
	emit := func(e models.ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	isRepo, err := s.git.IsRepository(ctx)
	if err != nil {
		logger.Error(ctx, "repository check failed", err)
		return "", err
	}
	if !isRepo {
		return "", errors.ErrNotInGitRepo
	}

	branch, err := s.git.GetCurrentBranch(ctx)
	if err != nil {
		logger.Error(ctx, "failed to read branch", err)
		return "", err
	}
	ctx = logger.With(ctx, "branch", branch)
	emit(models.ProgressEvent{Type: models.ProgressBranchDetected, Branch: branch})

	statuses, err := s.git.GetFileStatuses(ctx)
	if err != nil {
		logger.Error(ctx, "failed to read status", err)
		return "", err
	}

	staged := models.StagedFiles(statuses)
	if len(staged) == 0 {
		logger.Info(ctx, "nothing staged")
		emit(models.ProgressEvent{
			Type:    models.ProgressNothingStaged,
			Branch:  branch,
			Message: s.trans.GetMessage("commit.nothing_staged", 0, nil),
		})
		return models.OutcomeNothingStaged, nil
	}
	logger.Debug(ctx, "staged files detected", "staged", len(staged))
	emit(models.ProgressEvent{Type: models.ProgressStagedFiles, Branch: branch, Files: staged})

	cfg := s.resolve(ctx)
	emit(models.ProgressEvent{Type: models.ProgressConfigResolved, Branch: branch, Message: cfg.Source})

	answers, err := s.prompter.Ask(ctx, s.questions.Build(cfg, branch))
	if err != nil {
		return "", err
	}

	message, err := formatter.Format(answers, cfg, branch)
	if err != nil {
		logger.Error(ctx, "failed to format message", err)
		return "", err
	}
	emit(models.ProgressEvent{Type: models.ProgressMessageReady, Branch: branch, Message: message})

	confirmed, err := s.confirm(ctx)
	if err != nil {
		return "", err
	}
	if !confirmed {
		logger.Info(ctx, "commit cancelled")
		emit(models.ProgressEvent{
			Type:    models.ProgressCancelled,
			Branch:  branch,
			Message: s.trans.GetMessage("commit.cancelled", 0, nil),
		})
		return models.OutcomeCancelled, nil
	}

	emit(models.ProgressEvent{Type: models.ProgressCommitting, Branch: branch, Message: message})
	if err := s.git.CreateCommit(ctx, message); err != nil {
		logger.Error(ctx, "commit failed", err)
		return "", err
	}

	logger.Info(ctx, "commit created")
	emit(models.ProgressEvent{Type: models.ProgressCommitted, Branch: branch, Message: message})
	return models.OutcomeCommitted, nil
}

func (s *CommitService) confirm(ctx context.Context) (bool, error) {
	answers, err := s.prompter.Ask(ctx, []models.Question{{
		Kind:    models.KindConfirm,
		Name:    ConfirmQuestionName,
		Message: s.trans.GetMessage("commit.confirm", 0, nil),
		Default: true,
	}})
	if err != nil {
		return false, err
	}
	return answers.Bool(ConfirmQuestionName), nil
}
