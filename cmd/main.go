package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/thomas-vilte/commit-template/internal/cli/registry"
	"github.com/thomas-vilte/commit-template/internal/commands/commit"
	"github.com/thomas-vilte/commit-template/internal/commands/flags"
	"github.com/thomas-vilte/commit-template/internal/commands/lint"
	"github.com/thomas-vilte/commit-template/internal/commands/setup"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/ui"
	"github.com/thomas-vilte/commit-template/internal/version"
	"github.com/urfave/cli/v3"
)

const (
	langEnv     = "CT_LANG"
	defaultLang = "en"
)

func main() {
	logger.Initialize(false, false)

	translations, err := i18n.NewTranslations(language(), "")
	if err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	app, err := initializeApp(dir, os.Stdin, os.Stdout, translations)
	if err != nil {
		log.Fatalf("failed to initialize the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

// language picks CT_LANG when it names a shipped locale.
func language() string {
	switch lang := os.Getenv(langEnv); lang {
	case "en", "ru":
		return lang
	default:
		return defaultLang
	}
}

func initializeApp(dir string, in io.Reader, out io.Writer, t *i18n.Translations) (*cli.Command, error) {
	commitFactory := commit.NewCommitCommandFactory(dir, in, out)

	registerCommand := registry.NewRegistry(t)

	if err := registerCommand.Register("commit", commitFactory); err != nil {
		return nil, fmt.Errorf("registering 'commit': %w", err)
	}
	if err := registerCommand.Register("init", setup.NewInitCommandFactory(dir, out)); err != nil {
		return nil, fmt.Errorf("registering 'init': %w", err)
	}
	if err := registerCommand.Register("config", setup.NewConfigCommandFactory(dir, in, out)); err != nil {
		return nil, fmt.Errorf("registering 'config': %w", err)
	}
	if err := registerCommand.Register("remove", setup.NewRemoveCommandFactory(dir, in, out)); err != nil {
		return nil, fmt.Errorf("registering 'remove': %w", err)
	}
	if err := registerCommand.Register("lint", lint.NewLintCommandFactory(in, out)); err != nil {
		return nil, fmt.Errorf("registering 'lint': %w", err)
	}

	return &cli.Command{
		Name:                  "ct",
		Usage:                 t.GetMessage("app.usage", 0, nil),
		Version:               version.Version,
		Flags:                 flags.Global(t),
		Action:                commitFactory.Action(t),
		Commands:              registerCommand.CreateCommands(),
		Writer:                out,
		EnableShellCompletion: true,
	}, nil
}
