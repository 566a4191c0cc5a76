package diff

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Line table capacity. An index is carried through the diff as a single rune, so the table can never hold more entries than there are encodable runes.
//
// Runes in the surrogate block (U+D800..U+DFFF) do not survive a round trip through a Go string (they become U+FFFD), so indices skip that block. This makes
// the largest usable index utf8.MaxRune-surrogateCount rather than utf8.MaxRune.
const (
	surrogateMin   = 0xD800
	surrogateCount = 0x800

	// OldTextBudget is the table size at which encoding the old text stops adding lines. Roughly two thirds of the space goes to the old text.
	OldTextBudget = 666666

	// NewTextBudget is the table size at which encoding the new text stops adding lines. The new text gets whatever the old text left over.
	NewTextBudget = utf8.MaxRune - surrogateCount
)

// LineTable maps distinct lines to small integer indices and back. Index 0 is reserved for "" so that encoded text never contains a NUL rune.
//
// A LineTable is built by EncodeLines and consumed by Decode. It is not safe for concurrent use.
type LineTable struct {
	lines []string       // lines[i] is the line with index i
	index map[string]int // inverse of lines
}

func newLineTable() *LineTable {
	return &LineTable{
		lines: []string{""},
		index: make(map[string]int),
	}
}

// Len returns the number of entries, including the reserved entry 0.
func (t *LineTable) Len() int {
	return len(t.lines)
}

// Line returns the line with index i. It panics if i is out of range.
func (t *LineTable) Line(i int) string {
	return t.lines[i]
}

// EncodeLines reduces oldText and newText to rune slices where every rune stands for one line (including its trailing '\n', if any). Identical lines in either
// text share a rune, which lets a character diff of the results operate on whole lines.
//
// If the table fills up (see OldTextBudget and NewTextBudget), the rest of the text being encoded becomes one final entry. This loses line granularity for
// the tail but never fails.
func EncodeLines(oldText, newText string) (encOld []rune, encNew []rune, table *LineTable) {
	table = newLineTable()
	encOld = table.encode(oldText, OldTextBudget)
	encNew = table.encode(newText, NewTextBudget)
	return encOld, encNew, table
}

// encode walks text, pulling out one line at a time. Splitting the whole text up front would double the memory footprint for large inputs.
func (t *LineTable) encode(text string, budget int) []rune {
	var runes []rune
	lineStart := 0
	for lineStart < len(text) {
		lineEnd := strings.Index(text[lineStart:], defaultEOL)
		if lineEnd == -1 {
			lineEnd = len(text)
		} else {
			lineEnd = lineStart + lineEnd + len(defaultEOL)
		}
		line := text[lineStart:lineEnd]

		if i, ok := t.index[line]; ok {
			runes = append(runes, indexToRune(i))
			lineStart = lineEnd
			continue
		}

		if len(t.lines) >= budget {
			line = text[lineStart:]
			lineEnd = len(text)
		}
		t.lines = append(t.lines, line)
		i := len(t.lines) - 1
		t.index[line] = i
		runes = append(runes, indexToRune(i))
		lineStart = lineEnd
	}
	return runes
}

// Decode rewrites the Text of every edit in place, expanding each rune back into the line it stands for.
//
// It panics if a rune does not refer to an entry of t. That can only happen if edits did not come from diffing runes produced by the same table.
func (t *LineTable) Decode(edits []Edit) {
	for i := range edits {
		if edits[i].Text == "" {
			continue
		}
		var b strings.Builder
		for _, r := range edits[i].Text {
			idx := runeToIndex(r)
			if idx < 0 || idx >= len(t.lines) {
				panic(fmt.Errorf("diff: LineTable.Decode: rune %U of edit %d is outside the table (len %d)", r, i, len(t.lines)))
			}
			b.WriteString(t.lines[idx])
		}
		edits[i].Text = b.String()
	}
}

func indexToRune(i int) rune {
	if i >= surrogateMin {
		return rune(i + surrogateCount)
	}
	return rune(i)
}

// runeToIndex is the inverse of indexToRune. Runes that indexToRune never produces map to -1.
func runeToIndex(r rune) int {
	switch {
	case r < 0 || r > utf8.MaxRune:
		return -1
	case r < surrogateMin:
		return int(r)
	case r < surrogateMin+surrogateCount:
		return -1
	}
	return int(r) - surrogateCount
}
