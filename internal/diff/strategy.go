package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Differ runs diff-match-patch in line or character mode. Its only state is the diff-match-patch settings, so one Differ may be reused across requests.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffer returns a Differ with no diff timeout, so that results depend only on the inputs.
func NewDiffer() *Differ {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	return &Differ{dmp: dmp}
}

// LineMode diffs oldText and newText at line granularity: every edit covers whole lines (the last line of a text may lack its '\n'). No semantic cleanup is
// done, which would move edit boundaries off line boundaries.
func (d *Differ) LineMode(oldText, newText string) []Edit {
	encOld, encNew, table := EncodeLines(oldText, newText)
	edits := fromDMP(d.dmp.DiffMainRunes(encOld, encNew, false))
	table.Decode(edits)
	return edits
}

// CharMode diffs oldText and newText character by character, followed by a semantic cleanup that aligns edits to word boundaries where that costs nothing
// (ex: "Cactus cake" -> "Cactus cupcake" inserts "cup", not "upc").
func (d *Differ) CharMode(oldText, newText string) []Edit {
	diffs := d.dmp.DiffMain(oldText, newText, true)
	diffs = d.dmp.DiffCleanupSemantic(diffs)
	return fromDMP(diffs)
}

// Hybrid picks a mode for oldText -> newText and returns the edits along with whether line mode was used.
//
// Line mode is always computed first. If it contains exactly one OpInsert edit, it is discarded in favor of CharMode, which pinpoints exactly what changed inside
// the edited region. Note the trigger counts insert edits, not changed lines: one insert may span several new lines, and any number of deletes may accompany it.
func (d *Differ) Hybrid(oldText, newText string) ([]Edit, bool) {
	edits := d.LineMode(oldText, newText)
	lineMode := true
	if countOp(edits, OpInsert) == 1 {
		edits = d.CharMode(oldText, newText)
		lineMode = false
	}

	if err := validate(oldText, newText, edits); err != nil {
		panic(fmt.Errorf("diff: Hybrid(lineMode=%v): validate failed with %v", lineMode, err))
	}
	return edits, lineMode
}

func countOp(edits []Edit, op Op) int {
	n := 0
	for _, e := range edits {
		if e.Op == op {
			n++
		}
	}
	return n
}
