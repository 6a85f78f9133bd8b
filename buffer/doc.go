// Package buffer implements the pure document model for the markdown editor.
//
// Offsets are 0-based rune offsets into the document text.
// Selections are half-open ranges [Start, End) with 0 <= Start <= End <= Len().
package buffer
