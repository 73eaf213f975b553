// Command cf queries the CurseForge API and prints one JSON record per line.
//
// Configuration is read from --config and CURSEFORGE_* environment
// variables, e.g.
//
//	CURSEFORGE_API_KEY=... cf search --game 432 --filter jei --limit 20
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and releases what the command opened,
// including on failure.
func run(ctx context.Context, out io.Writer, args []string) error {
	cmd, a := newRootCommand(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, a.teardown())
}
