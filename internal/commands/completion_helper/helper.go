package completion_helper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints the flags of the current command and of the
// root command, one per line, for shell completion.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	var w io.Writer = os.Stdout
	if cmd.Root().Writer != nil {
		w = cmd.Root().Writer
	}
	seen := make(map[string]bool)

	emit := func(flags []cli.Flag) {
		for _, f := range flags {
			for _, name := range f.Names() {
				if seen[name] {
					continue
				}
				seen[name] = true
				if len(name) == 1 {
					_, _ = fmt.Fprintln(w, "-"+name)
				} else {
					_, _ = fmt.Fprintln(w, "--"+name)
				}
			}
		}
	}

	emit(cmd.Flags)
	if root := cmd.Root(); root != cmd {
		emit(root.Flags)
	}
}
