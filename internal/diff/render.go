package diff

import (
	"strconv"
	"strings"
)

// RenderEdits returns a human-oriented rendering of edits, one edit per block. Each block starts with the Op marker ("=", "+", "-") and the edit's index; its
// text follows on the next lines, each prefixed with two spaces. Line terminators are made visible: "\n" is rendered as "⏎" and "\r" as "␍", so a reader can
// tell whether an edit ends on a line boundary.
//
// If color is true, the output contains ANSI 256-color escape sequences: insertions on a green background, deletions on a pink background, equal text uncolored.
// The returned string uses "\n" as the line separator and ends with "\n" unless edits is empty.
func RenderEdits(edits []Edit, color bool) string {
	// Colors (ANSI) for pretty output.
	const (
		reset     = "\x1b[0m"
		blackFG   = "\x1b[30m"
		pinkLine  = "\x1b[48;5;224m" // light pink for deleted text
		greenLine = "\x1b[48;5;194m" // light green for added text
		cyanBold  = "\x1b[1;36m"
	)

	var b strings.Builder
	for i, e := range edits {
		header := e.Op.String() + " edit " + strconv.Itoa(i)
		if color {
			header = cyanBold + header + reset
		}
		b.WriteString(header)
		b.WriteString("\n")

		var start, end string
		if color {
			switch e.Op {
			case OpInsert:
				start, end = blackFG+greenLine, reset
			case OpDelete:
				start, end = blackFG+pinkLine, reset
			}
		}

		for _, ln := range splitPreserveEOL(e.Text, defaultEOL) {
			b.WriteString("  ")
			b.WriteString(start)
			b.WriteString(visibleEOL(ln))
			b.WriteString(end)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// splitPreserveEOL splits text by eol and preserves the eol on each line, except possibly the last.
func splitPreserveEOL(text, eol string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		idx := strings.Index(text, eol)
		if idx == -1 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx+len(eol)])
		text = text[idx+len(eol):]
		if text == "" {
			break
		}
	}
	return lines
}

var eolReplacer = strings.NewReplacer("\r", "␍", "\n", "⏎")

func visibleEOL(s string) string {
	return eolReplacer.Replace(s)
}
