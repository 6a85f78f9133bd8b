// Package editor provides a Bubble Tea markdown editor component backed by
// the buffer package.
//
// The component pairs a plain-text input with a rendered preview and a row of
// formatting buttons. Formatting buttons and their bindings run format.Action
// values against the buffer through a format.Host; the preview is a
// preview.Model fed with the current text whenever the editor is in
// Previewing mode.
package editor
