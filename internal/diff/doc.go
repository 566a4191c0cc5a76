// Package diff computes the text that was added between an "old" and a "new" snapshot of a document, shaped for announcement by a screen reader.
//
// Representation: an edit script is an ordered []Edit. Each Edit has an Op (OpEqual, OpInsert, OpDelete) and Text. Concatenating the OpEqual and OpDelete texts
// gives the old snapshot; concatenating the OpEqual and OpInsert texts gives the new snapshot.
//
// Diffing modes: the underlying algorithm is diff-match-patch (github.com/sergi/go-diff). It runs in one of two modes:
//   - Line mode: each distinct line of both texts is replaced by a single rune (see EncodeLines and LineTable), the rune strings are diffed, and the result is
//     decoded back to lines. Edits therefore always fall on line boundaries.
//   - Character mode: the raw texts are diffed and semantically cleaned up, so edits pinpoint the exact characters that changed.
//
// Differ.Hybrid always runs line mode first. If that yields exactly one insertion, it throws the result away and uses character mode instead ("rice" vs "ice"
// is more useful than the whole line). Otherwise the line-mode result is kept.
//
// Added text: AddedText turns an edit script into the string to announce. Insertions are always announced; in line mode, unchanged lines after the first edit
// are announced too, so that lines sandwiched between changes keep their context. Every announced chunk ends with a newline.
//
// Getting added text:
//
//	text := diff.Added(oldText, newText)
//
// Nothing in this package keeps state between calls. A LineTable lives for one encode/decode round trip.
package diff
