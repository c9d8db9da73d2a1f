// Package formatter turns collected answers into the final commit message.
package formatter

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/models"
)

// Answer keys read by the built-in formats.
const (
	KeyType                = "type"
	KeyTaskID              = "taskId"
	KeyScope               = "scope"
	KeySubject             = "subject"
	KeyBody                = "body"
	KeyIssues              = "issues"
	KeyBreaking            = "breaking"
	KeyBreakingDescription = "breakingDescription"
)

const sectionSeparator = "\n\n"

// Format returns the commit message for one session. A custom MessageFormat
// is returned as is; without one the default shape
// "{type}/[{branch}] | #{taskId} | {subject}" is used.
func Format(answers models.Answers, cfg *models.EffectiveConfig, branch string) (msg string, err error) {
	if cfg == nil || cfg.MessageFormat == nil {
		return Default(answers, branch), nil
	}

	defer func() {
		if r := recover(); r != nil {
			msg = ""
			err = errors.ErrFormatMessage.WithError(fmt.Errorf("message format panicked: %v", r))
		}
	}()

	msg, err = cfg.MessageFormat(answers, cfg, branch)
	if err != nil {
		return "", errors.ErrFormatMessage.WithError(err)
	}
	return msg, nil
}

// Default renders the built-in format. The branch is used as given.
func Default(answers models.Answers, branch string) string {
	return fmt.Sprintf("%s/[%s] | #%s | %s",
		answers.String(KeyType),
		branch,
		answers.String(KeyTaskID),
		answers.String(KeySubject),
	)
}

// Conventional renders "type(scope): subject" followed by the optional body,
// breaking change and closed issues sections, each separated by a blank line.
func Conventional(answers models.Answers, _ *models.EffectiveConfig, _ string) (string, error) {
	var header strings.Builder
	header.WriteString(answers.String(KeyType))
	if scope := answers.String(KeyScope); scope != "" {
		header.WriteString("(" + scope + ")")
	}
	header.WriteString(": ")
	header.WriteString(answers.String(KeySubject))

	sections := []string{header.String()}

	if body := answers.String(KeyBody); body != "" {
		sections = append(sections, body)
	}
	if answers.Bool(KeyBreaking) {
		sections = append(sections, "BREAKING CHANGE: "+answers.String(KeyBreakingDescription))
	}
	if issues := answers.String(KeyIssues); issues != "" {
		sections = append(sections, "Closes "+issues)
	}

	return strings.Join(sections, sectionSeparator), nil
}

// FormatBranch applies the configured BranchFormat. Without one the branch
// itself is returned.
func FormatBranch(branch string, cfg *models.EffectiveConfig) (string, bool) {
	if cfg == nil || cfg.BranchFormat == nil {
		return branch, true
	}
	return cfg.BranchFormat(branch)
}
