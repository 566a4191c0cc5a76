package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/codalotl/nvdadmp/internal/diff"
	"github.com/codalotl/nvdadmp/internal/protocol"
	qcli "github.com/codalotl/nvdadmp/internal/q/cli"
	"github.com/codalotl/nvdadmp/internal/simplelogger"
)

const serveLong = `Reads request frames (old text, new text) from stdin and answers each with the text
that was added, until it reads the (0, 0) sentinel frame. This is what a host
application launches; it is also what runs when no command is given.

Logging goes to the file named by NVDADMP_LOG_FILE (unset: no logging). Set
NVDADMP_LOG_LEVEL=debug to log every request.`

func newRootCommand() *qcli.Command {
	root := &qcli.Command{
		Name:  "nvdadmp",
		Short: "Report text added between two snapshots of a document",
		Long:  serveLong,
		Args:  qcli.NoArgs,
		Run:   runServe,
	}

	serveCmd := &qcli.Command{
		Name:  "serve",
		Short: "Run the binary filter protocol on stdin/stdout (default)",
		Long:  serveLong,
		Args:  qcli.NoArgs,
		Run:   runServe,
	}

	diffCmd := &qcli.Command{
		Name:  "diff",
		Short: "Print the text added between two files",
		Long: `Prints the text the filter would announce for OLD -> NEW. Either path may be "-"
to read that side from stdin (but not both).`,
		Example: "nvdadmp diff old.txt new.txt\nnvdadmp diff --edits --color old.txt -",
		Args:    qcli.ExactArgs(2),
	}
	showEdits := diffCmd.Flags().Bool("edits", false, "also print the chosen mode and every edit to stderr")
	color := diffCmd.Flags().Bool("color", false, "colorize --edits output")
	diffCmd.Run = func(c *qcli.Context) error {
		return runDiff(c, *showEdits, *color)
	}

	versionCmd := &qcli.Command{
		Name:  "version",
		Short: "Print the version",
		Args:  qcli.NoArgs,
		Run: func(c *qcli.Context) error {
			_, err := fmt.Fprintf(c.Out, "nvdadmp %s\n", Version)
			return err
		},
	}

	root.AddCommand(serveCmd, diffCmd, versionCmd)
	return root
}

func runServe(c *qcli.Context) error {
	if f, ok := c.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(c.Err, "nvdadmp: stdin is a terminal; expecting binary request frames from a host process (see nvdadmp --help)")
	}

	simplelogger.Log("serve: starting (version %s)", Version)

	d := diff.NewDiffer()
	handler := func(oldText, newText string) string {
		edits, lineMode := d.Hybrid(oldText, newText)
		simplelogger.Debug("serve: lineMode=%v edits=%d", lineMode, len(edits))
		return diff.AddedText(edits, lineMode)
	}

	if err := protocol.Serve(c.Context, c.In, c.Out, handler); err != nil {
		simplelogger.Error("serve: %v", err)
		return qcli.ExitError{Code: 1, Err: fmt.Errorf("nvdadmp: %w", err)}
	}

	simplelogger.Log("serve: sentinel received, exiting")
	return nil
}

func runDiff(c *qcli.Context, showEdits, color bool) error {
	oldPath, newPath := c.Args[0], c.Args[1]
	if oldPath == "-" && newPath == "-" {
		return qcli.Usagef("at most one of OLD and NEW may be -")
	}

	oldText, err := readInput(c.In, oldPath)
	if err != nil {
		return err
	}
	newText, err := readInput(c.In, newPath)
	if err != nil {
		return err
	}

	edits, lineMode := diff.NewDiffer().Hybrid(oldText, newText)
	if showEdits {
		mode := "character"
		if lineMode {
			mode = "line"
		}
		fmt.Fprintf(c.Err, "mode: %s\n", mode)
		fmt.Fprint(c.Err, diff.RenderEdits(edits, color))
	}

	_, err = io.WriteString(c.Out, diff.AddedText(edits, lineMode))
	return err
}

var errNotUTF8 = errors.New("input is not valid UTF-8")

func readInput(stdin io.Reader, path string) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", path, errNotUTF8)
	}
	return string(b), nil
}
