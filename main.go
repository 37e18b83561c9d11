// mpwfs - run Mac OS File Manager traps against the host filesystem.
//
// Usage:
//
//	mpwfs [-volume NAME] create <path>
//	mpwfs [-volume NAME] delete <path>
//	mpwfs [-volume NAME] info <path>
//	mpwfs [-volume NAME] settype <path> <type> <creator>
//	mpwfs [-volume NAME] eof <path>
//	mpwfs [-volume NAME] vol
//	mpwfs [-volume NAME] cmp [-case] <a> <b>
//
// Each command lays out a parameter block in guest memory, raises the
// trap, and reports what the handler wrote back.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/skx/mpwfs/toolbox"
	"github.com/skx/mpwfs/version"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mpwfs: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the logger we use, writing to w.
//
// We default to warnings or higher, but show everything if $DEBUG is
// non-empty.  Output is JSON unless w is a terminal.
func newLogger(w io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)

	if os.Getenv("DEBUG") != "" {
		lvl.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func run(args []string, stdout, stderr io.Writer) error {

	defVolume := toolbox.DefaultVolumeName
	if v := os.Getenv("MPWFS_VOLUME"); v != "" {
		defVolume = v
	}

	fs := flag.NewFlagSet("mpwfs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	volume := fs.String("volume", defVolume, "The name of the volume reported by GetVol.")
	showVersion := fs.Bool("version", false, "Report our version, and exit.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprint(stdout, version.GetVersionBanner())
		return nil
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: mpwfs [-volume NAME] <command> [args] (use %s)", commandNames())
	}

	command := fs.Arg(0)
	cmdArgs := fs.Args()[1:]

	c, ok := commands[command]
	if !ok {
		return fmt.Errorf("unknown command: %s (use %s)", command, commandNames())
	}

	d, err := newDriver(*volume, newLogger(stderr), stdout)
	if err != nil {
		return err
	}

	return c(d, cmdArgs)
}
