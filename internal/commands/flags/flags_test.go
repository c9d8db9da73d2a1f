package flags

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newApp(t *testing.T, trans *i18n.Translations, action cli.ActionFunc) *cli.Command {
	t.Helper()
	return &cli.Command{
		Name:  "ct",
		Flags: Global(trans),
		Commands: []*cli.Command{
			{Name: "lint", Action: action},
		},
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("switches the language from the root flag", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		app := newApp(t, trans, func(ctx context.Context, cmd *cli.Command) error {
			Apply(ctx, cmd, trans)
			return nil
		})

		require.NoError(t, app.Run(ctx, []string{"ct", "--lang", "ru", "lint"}))
		assert.Equal(t, "ru", trans.Language())
	})

	t.Run("unsupported language keeps the current one", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		app := newApp(t, trans, func(ctx context.Context, cmd *cli.Command) error {
			Apply(ctx, cmd, trans)
			return nil
		})

		require.NoError(t, app.Run(ctx, []string{"ct", "--lang", "xx", "lint"}))
		assert.Equal(t, "en", trans.Language())
	})

	t.Run("debug enables debug logs", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		app := newApp(t, trans, func(ctx context.Context, cmd *cli.Command) error {
			Apply(ctx, cmd, trans)
			return nil
		})

		require.NoError(t, app.Run(ctx, []string{"ct", "--debug", "lint"}))
		assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))
	})
}
