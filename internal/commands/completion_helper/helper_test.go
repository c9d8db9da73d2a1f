package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &cli.Command{
		Name:   "init",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}},
			&cli.BoolFlag{Name: "hooks"},
		},
	}

	DefaultFlagComplete(context.Background(), cmd)

	assert.Equal(t, "--force\n-f\n--hooks\n", out.String())
}
