// Package flags holds the process-wide flags of the ct application.
package flags

import (
	"context"

	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/urfave/cli/v3"
)

const (
	Debug   = "debug"
	Verbose = "verbose"
	Lang    = "lang"
)

// Global returns the flags defined on the root command. Subcommands read
// them through their lineage.
func Global(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  Debug,
			Usage: t.GetMessage("app.flag_debug", 0, nil),
		},
		// -v belongs to the root --version flag.
		&cli.BoolFlag{
			Name:  Verbose,
			Usage: t.GetMessage("app.flag_verbose", 0, nil),
		},
		&cli.StringFlag{
			Name:    Lang,
			Aliases: []string{"l"},
			Usage:   t.GetMessage("app.flag_lang", 0, nil),
		},
	}
}

// Apply installs the logger selected by --debug/--verbose and switches t to
// --lang when given. An unsupported language keeps the current one.
func Apply(ctx context.Context, cmd *cli.Command, t *i18n.Translations) {
	logger.Initialize(cmd.Bool(Debug), cmd.Bool(Verbose))

	if lang := cmd.String(Lang); lang != "" && lang != t.Language() {
		if err := t.SetLanguage(lang); err != nil {
			logger.Warn(ctx, "language not supported, keeping current", "lang", lang, "current", t.Language())
		}
	}
}
