package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

type Options struct {
	// Args is the argv excluding the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, defaults are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler.
//
// Positional args are in Args. Flag values are typically read via variables bound
// at command construction time (e.g. fs.Bool(...)).
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a command tree as a CLI program and returns a process exit code: 0 on success, 2 on usage errors, 1 (or an ExitCoder's code) on handler errors.
//
// Leading args that name child commands select the command; the rest are that command's flags and positional args, in any order. -h and --help print help
// for the selected command to Out.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil {
		panic("cli: Run called with nil root")
	}
	if root.Name == "" {
		panic("cli: Run called with root.Name empty")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, rest := selectCommand(root, opts.Args)

	args, err := parseInterspersed(selected.Flags(), rest)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			writeHelp(out, selected)
			return 0
		}
		printUsageError(selected, usageErrorf("%v", err), errOut)
		return 2
	}

	if selected.Run == nil {
		if len(args) == 0 {
			printUsageError(selected, usageErrorf("missing required subcommand"), errOut)
			return 2
		}
		printUsageError(selected, usageErrorf("unknown subcommand: %s", args[0]), errOut)
		return 2
	}

	if selected.Args != nil {
		if err := selected.Args(args); err != nil {
			return exitForError(selected, err, errOut, 2)
		}
	}

	c := &Context{
		Context: ctx,
		Command: selected,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := selected.Run(c); err != nil {
		return exitForError(selected, err, errOut, 1)
	}
	return 0
}

func selectCommand(root *Command, argv []string) (*Command, []string) {
	selected := root
	for len(argv) > 0 {
		child := selected.childByToken(argv[0])
		if child == nil {
			break
		}
		selected = child
		argv = argv[1:]
	}
	return selected, argv
}

// parseInterspersed parses flags anywhere in argv (ex: "diff a b --edits"), returning the positional args in order. Everything after a "--" is positional.
func parseInterspersed(fs *flag.FlagSet, argv []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(argv); err != nil {
			return nil, err
		}
		rest := fs.Args()
		// fs.Parse stops at the first positional arg, or just after "--".
		if consumed := len(argv) - len(rest); consumed > 0 && argv[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		argv = rest[1:]
	}
}

// exitForError reports err and returns its exit code. Errors that aren't ExitCoders get defaultCode; code 2 also prints the command's help.
func exitForError(cmd *Command, err error, errOut io.Writer, defaultCode int) int {
	code := defaultCode
	var ec ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}

	switch code {
	case 0:
		return 0
	case 2:
		printUsageError(cmd, err, errOut)
	default:
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(errOut, msg)
		}
	}
	return code
}

func printUsageError(cmd *Command, err error, errOut io.Writer) {
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
		fmt.Fprintln(errOut)
	}
	writeHelp(errOut, cmd)
}
