package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// String returns the diff-match-patch style marker for op: "=", "+", or "-".
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	}
	return "?"
}

// Edit is one operation of an edit script from old text to new text.
//
// An edit script ([]Edit) is ordered and covers both texts completely:
//   - concat(Text of OpEqual and OpDelete edits) == old text
//   - concat(Text of OpEqual and OpInsert edits) == new text
//   - no two adjacent edits have the same Op, and no edit has empty Text
type Edit struct {
	Op   Op
	Text string
}

// defaultEOL is the EOL ('\n'). Lines are split after it and it stays part of the line.
const defaultEOL = "\n"

// fromDMP converts diff-match-patch diffs to edits, dropping empty diffs and coalescing neighbors with the same Op.
func fromDMP(diffs []diffmatchpatch.Diff) []Edit {
	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = OpEqual
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		if n := len(edits); n > 0 && edits[n-1].Op == op {
			edits[n-1].Text += d.Text
			continue
		}
		edits = append(edits, Edit{Op: op, Text: d.Text})
	}
	return edits
}
