package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdded(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
		exp     string
	}{
		{
			// A single line of text gets a character diff: exactly which characters are new.
			name:    "single char",
			oldText: "Cactus on ice",
			newText: "Cactus on rice",
			exp:     "r\n",
		},
		{
			name:    "single word",
			oldText: "Cactus cake",
			newText: "Cactus cupcake",
			exp:     "cup\n",
		},
		{
			// One changed line in a multi-line text: still exactly the added characters.
			name:    "multiline single line change",
			oldText: "The following is a list of cactus-themed foods\nCactus pie\nCactus tacos\nCactus cereal",
			newText: "The following is a list of cactus-themed foods\nCactus pie\nCactus tacos\nCactus soup",
			exp:     "soup\n",
		},
		{
			name:    "trailing line change",
			oldText: "A\nB\nC\nD",
			newText: "A\nB\nC\nE",
			exp:     "E\n",
		},
		{
			// More than one changed line: whole lines, keeping the common text between changed sections.
			name:    "multiline multi line change",
			oldText: "The following is a list of cactus-themed foods\ncactus cake\ncactus pie\ncactus cereal",
			newText: "The following is a list of cactus-themed foods\ncactus cupcakes\ncactus pie\ncactus soup",
			exp:     "cactus cupcakes\ncactus pie\ncactus soup\n",
		},
		{
			name:    "sandwiched equal line",
			oldText: "H\nx\ny\nz",
			newText: "H\nx2\ny\nz2",
			exp:     "x2\ny\nz2\n",
		},
		{
			name:    "appended lines",
			oldText: "A\nB\n",
			newText: "A\nB\nC\nD\n",
			exp:     "C\nD\n",
		},
		{name: "both empty", oldText: "", newText: "", exp: ""},
		{name: "from empty", oldText: "", newText: "hello", exp: "hello\n"},
		{name: "to empty", oldText: "hello\nworld\n", newText: "", exp: ""},
		{name: "unchanged", oldText: "same\ntext\n", newText: "same\ntext\n", exp: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, Added(tc.oldText, tc.newText))
		})
	}
}

func TestAddedText(t *testing.T) {
	edits := []Edit{
		{Op: OpEqual, Text: "prefix\n"},
		{Op: OpDelete, Text: "gone\n"},
		{Op: OpInsert, Text: "new"},
		{Op: OpEqual, Text: "middle\r"},
		{Op: OpInsert, Text: "last\n"},
	}

	t.Run("line mode", func(t *testing.T) {
		assert.Equal(t, "new\nmiddle\rlast\n", AddedText(edits, true))
	})
	t.Run("char mode", func(t *testing.T) {
		assert.Equal(t, "new\nlast\n", AddedText(edits, false))
	})
	t.Run("leading insert", func(t *testing.T) {
		got := AddedText([]Edit{{Op: OpInsert, Text: "a"}, {Op: OpEqual, Text: "b"}}, true)
		assert.Equal(t, "a\nb\n", got)
	})
	t.Run("leading delete makes the first equal context", func(t *testing.T) {
		got := AddedText([]Edit{{Op: OpDelete, Text: "a\n"}, {Op: OpEqual, Text: "b\n"}}, true)
		assert.Equal(t, "b\n", got)
	})
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", AddedText(nil, true))
		assert.Equal(t, "", AddedText(nil, false))
	})
}

func TestAdded_Idempotent(t *testing.T) {
	oldText := "one\ntwo\nthree\nfour\n"
	newText := "one\n2\nthree\n4\nfive\n"

	first := Added(oldText, newText)
	second := Added(oldText, newText)
	require.Equal(t, first, second)
	require.Equal(t, "2\nthree\n4\nfive\n", first)
}
