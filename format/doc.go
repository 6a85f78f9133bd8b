// Package format implements the markdown formatting actions behind the
// editor's button row.
//
// Every action is a pure function from (text, selection) to
// (text, selection). Offsets are rune offsets. Actions clamp their input, so
// a malformed selection (for example Start > len(text)) is treated as a caret
// at the end of the text rather than reported as an error.
//
// Actions never touch an editor directly. They run against a Host, which
// exposes the current text, the current selection, and a way to apply the
// result.
package format
