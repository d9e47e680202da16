// Package main provides rakta, an interactive family-tree record tool.
package main

import (
	"io"
	"os"
	"strings"

	"rakta/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	// On a real terminal pass nil so the CLI prompts through liner;
	// piped input is read plainly.
	var in io.Reader = os.Stdin

	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		in = nil
	}

	os.Exit(cli.Run(in, os.Stdout, os.Stderr, os.Args, env))
}
