package cli

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

func writeHelp(w io.Writer, cmd *Command) {
	full := commandDisplayName(cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", full, cmd.Short)
	} else {
		fmt.Fprintf(w, "%s\n", full)
	}

	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(cmd))

	if len(cmd.children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		children := cmd.Commands()
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		for _, child := range children {
			if child.Short != "" {
				fmt.Fprintf(w, "  %s\t%s\n", child.Name, child.Short)
			} else {
				fmt.Fprintf(w, "  %s\n", child.Name)
			}
		}
	}

	if cmd.hasFlags() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		cmd.flags.VisitAll(func(f *flag.Flag) {
			fmt.Fprintln(w, formatFlagHelpLine(f))
		})
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Example:")
		ex := strings.TrimRight(cmd.Example, "\n")
		for _, line := range strings.Split(ex, "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func commandDisplayName(cmd *Command) string {
	var parts []string
	for _, node := range cmd.pathFromRoot() {
		parts = append(parts, node.Name)
	}
	return strings.Join(parts, " ")
}

func usageLine(cmd *Command) string {
	segments := []string{commandDisplayName(cmd)}
	if cmd.hasFlags() {
		segments = append(segments, "[flags]")
	}
	if len(cmd.children) > 0 {
		if cmd.Run == nil {
			segments = append(segments, "<command>")
		} else {
			segments = append(segments, "[command]")
		}
	}
	if cmd.Run != nil && len(cmd.children) == 0 {
		segments = append(segments, "[args]")
	}
	return strings.Join(segments, " ")
}

func formatFlagHelpLine(f *flag.Flag) string {
	names := "--" + f.Name
	if kind, _ := flag.UnquoteUsage(f); kind != "" {
		names += " <" + kind + ">"
	}
	usage := strings.TrimSpace(f.Usage)
	if usage == "" {
		return "  " + names
	}
	return fmt.Sprintf("  %s\t%s", names, usage)
}
