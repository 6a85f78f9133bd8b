// Package preview renders markdown for the editor's read-only preview.
//
// Rendering is delegated to glamour; this package owns the style table, the
// list of links in the document, and a Bubble Tea model that scrolls the
// rendered output and activates links.
package preview
