package diff

import "strings"

// AddedText returns the text to announce for edits: the text present in the new snapshot that is worth reading to the user.
//
// Every OpInsert is included. If lineMode is true, every OpEqual except a leading one is included as well: once the first change has happened, unchanged lines
// are context for the changes around them, while the unchanged prefix of the document is not. OpDelete is never included. Each included chunk is followed by
// "\n" unless it already ends in "\n" or "\r".
func AddedText(edits []Edit, lineMode bool) string {
	var b strings.Builder
	for i, e := range edits {
		if e.Op != OpInsert && !(lineMode && i > 0 && e.Op == OpEqual) {
			continue
		}
		b.WriteString(e.Text)
		if !strings.HasSuffix(e.Text, "\n") && !strings.HasSuffix(e.Text, "\r") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Added returns the text added in newText relative to oldText, ready for announcement. It is Differ.Hybrid followed by AddedText.
func Added(oldText, newText string) string {
	edits, lineMode := NewDiffer().Hybrid(oldText, newText)
	return AddedText(edits, lineMode)
}
