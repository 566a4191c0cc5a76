package diff

import (
	"fmt"
	"strings"
)

// validate checks that edits is a well-formed edit script from oldText to newText and returns an error on the first violation.
func validate(oldText, newText string, edits []Edit) error {
	var oldConcat, newConcat strings.Builder
	for i, e := range edits {
		if e.Text == "" {
			return fmt.Errorf("edit[%d]: empty Text", i)
		}
		if i > 0 && edits[i-1].Op == e.Op {
			return fmt.Errorf("edit[%d]: same Op (%v) as previous edit", i, e.Op)
		}
		switch e.Op {
		case OpEqual:
			oldConcat.WriteString(e.Text)
			newConcat.WriteString(e.Text)
		case OpDelete:
			oldConcat.WriteString(e.Text)
		case OpInsert:
			newConcat.WriteString(e.Text)
		default:
			return fmt.Errorf("edit[%d]: unknown Op %d", i, int(e.Op))
		}
	}

	if oldConcat.String() != oldText {
		return fmt.Errorf("edits do not reconstruct old text")
	}
	if newConcat.String() != newText {
		return fmt.Errorf("edits do not reconstruct new text")
	}
	return nil
}
